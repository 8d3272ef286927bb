package test

import (
	"campaign-manager/config"
	"campaign-manager/internal/global/database"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var setupOnce sync.Once

// SetupDB 连接测试数据库并清空业务表
// 未设置 TEST_MYSQL_DSN 时跳过用例，避免在无数据库的环境下误报失败
func SetupDB(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN 未设置，跳过数据库用例")
	}

	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		config.Get().JWT.AccessSecret = "test-secret"

		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			panic(err)
		}
		if err := database.Migrate(db); err != nil {
			panic(err)
		}
		database.DB = db
	})

	// 先删关联表再删主表，绕开外键约束
	for _, table := range []string{"campaign_influencers", "campaigns", "influencers", "users"} {
		if err := database.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("清空表 %s 失败: %v", table, err)
		}
	}
}
