package influencer

import (
	"campaign-manager/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleInfluencer struct{}

func (m *ModuleInfluencer) GetName() string {
	return "Influencer"
}

func (m *ModuleInfluencer) Init() {
	log = logger.New("Influencer")
}
