package main

import (
	"fmt"

	"github.com/dingcan-next/internal/config"
	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/logger"
	"github.com/dingcan-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加套餐
	packages := []models.MealPackage{
		{
			Name:         "轻食早餐月卡",
			Description:  "每日早餐：粥品/三明治轮换，含豆浆或咖啡",
			MealTypes:    models.StringArray([]string{constants.MealTypeBreakfast}),
			Price:        models.NewMoneyFromDecimal(decimal.NewFromInt(300)),
			DurationDays: 30,
			IsActive:     true,
			SortOrder:    300,
		},
		{
			Name:         "商务午餐月卡",
			Description:  "工作日午餐：两荤一素一汤，配送到楼",
			MealTypes:    models.StringArray([]string{constants.MealTypeLunch}),
			Price:        models.NewMoneyFromDecimal(decimal.NewFromInt(600)),
			DurationDays: 30,
			IsActive:     true,
			SortOrder:    280,
		},
		{
			Name:         "家庭晚餐月卡",
			Description:  "每日晚餐：三菜一汤家庭份，适合 2-3 人",
			MealTypes:    models.StringArray([]string{constants.MealTypeDinner}),
			Price:        models.NewMoneyFromDecimal(decimal.NewFromInt(900)),
			DurationDays: 30,
			IsActive:     true,
			SortOrder:    260,
		},
		{
			Name:         "全日三餐月卡",
			Description:  "早中晚三餐全包，营养师配餐",
			MealTypes:    models.StringArray([]string{constants.MealTypeBreakfast, constants.MealTypeLunch, constants.MealTypeDinner}),
			Price:        models.NewMoneyFromDecimal(decimal.NewFromInt(1500)),
			DurationDays: 30,
			IsActive:     true,
			SortOrder:    240,
		},
		{
			Name:         "停售示例套餐",
			Description:  "用于后台演示下架状态",
			MealTypes:    models.StringArray([]string{constants.MealTypeLunch}),
			Price:        models.NewMoneyFromDecimal(decimal.NewFromInt(500)),
			DurationDays: 30,
			IsActive:     false,
			SortOrder:    100,
		},
	}

	for _, pkg := range packages {
		var existing models.MealPackage
		if err := models.DB.Where("name = ?", pkg.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&pkg).Error; err != nil {
				stdLog.Printf("Failed to create package %s: %v", pkg.Name, err)
			} else {
				stdLog.Printf("Created package: %s", pkg.Name)
			}
		} else {
			stdLog.Printf("Package already exists: %s", pkg.Name)
		}
	}

	// 添加加购项
	addons := []models.PackageAddon{
		{Name: "每日水果盒", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(60)), IsActive: true, SortOrder: 300},
		{Name: "酸奶一杯", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(45)), IsActive: true, SortOrder: 280},
		{Name: "加饭加量", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(30)), IsActive: true, SortOrder: 260},
	}

	for _, addon := range addons {
		var existing models.PackageAddon
		if err := models.DB.Where("name = ?", addon.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&addon).Error; err != nil {
				stdLog.Printf("Failed to create addon %s: %v", addon.Name, err)
			} else {
				stdLog.Printf("Created addon: %s", addon.Name)
			}
		} else {
			stdLog.Printf("Addon already exists: %s", addon.Name)
		}
	}

	// 添加配送分组
	groups := []models.DeliveryGroup{
		{Name: "tower-a", CategoryName: "写字楼", LocationName: "A 座大堂", SortOrder: 300},
		{Name: "tower-b", CategoryName: "写字楼", LocationName: "B 座大堂", SortOrder: 280},
		{Name: "riverside", CategoryName: "住宅区", LocationName: "滨江小区东门", SortOrder: 260},
	}

	for _, group := range groups {
		var existing models.DeliveryGroup
		if err := models.DB.Where("name = ?", group.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&group).Error; err != nil {
				stdLog.Printf("Failed to create delivery group %s: %v", group.Name, err)
			} else {
				stdLog.Printf("Created delivery group: %s", group.Name)
			}
		} else {
			stdLog.Printf("Delivery group already exists: %s", group.Name)
		}
	}

	// 添加配送员
	couriers := []models.Courier{
		{Name: "王师傅", Phone: "13800000001", IsActive: true},
		{Name: "李师傅", Phone: "13800000002", IsActive: true},
		{Name: "赵师傅", Phone: "13800000003", IsActive: false},
	}

	for _, courier := range couriers {
		var existing models.Courier
		if err := models.DB.Where("name = ?", courier.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&courier).Error; err != nil {
				stdLog.Printf("Failed to create courier %s: %v", courier.Name, err)
			} else {
				stdLog.Printf("Created courier: %s", courier.Name)
			}
		} else {
			stdLog.Printf("Courier already exists: %s", courier.Name)
		}
	}

	// 写入配送配置（配送中心坐标供距离估算）
	deliveryConfig := map[string]interface{}{
		"hub_lat": 31.2304,
		"hub_lng": 121.4737,
	}

	var setting models.Setting
	if err := models.DB.Where("key = ?", constants.SettingKeyDeliveryConfig).First(&setting).Error; err != nil {
		setting = models.Setting{
			Key:       constants.SettingKeyDeliveryConfig,
			ValueJSON: models.JSON(deliveryConfig),
		}
		if err := models.DB.Create(&setting).Error; err != nil {
			stdLog.Printf("Failed to create delivery config: %v", err)
		} else {
			stdLog.Println("Created delivery config")
		}
	} else {
		setting.ValueJSON = models.JSON(deliveryConfig)
		if err := models.DB.Save(&setting).Error; err != nil {
			stdLog.Printf("Failed to update delivery config: %v", err)
		} else {
			stdLog.Println("Updated delivery config")
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 5 Meal packages (含 1 个下架示例)")
	fmt.Println("- 3 Package addons")
	fmt.Println("- 3 Delivery groups")
	fmt.Println("- 3 Couriers")
	fmt.Println("- Delivery configuration")
}
