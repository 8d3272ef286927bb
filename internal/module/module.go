package module

import (
	"campaign-manager/internal/module/assignment"
	"campaign-manager/internal/module/campaign"
	"campaign-manager/internal/module/influencer"
	"campaign-manager/internal/module/ping"
	"campaign-manager/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&campaign.ModuleCampaign{},
		&influencer.ModuleInfluencer{},
		&assignment.ModuleAssignment{},
	})
}
