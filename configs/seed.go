package configs

import (
	"log"

	"backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้างร้าน demo + waiter ครั้งแรก (ข้ามถ้าไม่ได้ตั้ง env)
func SeedDemo() error {
	db := DB()
	restName := getEnv("SEED_RESTAURANT", "")
	waiterName := getEnv("SEED_WAITER_NAME", "")
	pin := getEnv("SEED_WAITER_PIN", "")
	if restName == "" || waiterName == "" || pin == "" {
		log.Println("⚠️ skip seeding: missing SEED_RESTAURANT/SEED_WAITER_NAME/SEED_WAITER_PIN")
		return nil
	}

	var rest entity.Restaurant
	if err := db.FirstOrCreate(&rest, entity.Restaurant{Name: restName}).Error; err != nil {
		return err
	}

	var count int64
	db.Model(&entity.Waiter{}).
		Where("restaurant_id = ? AND name = ?", rest.ID, waiterName).
		Count(&count)
	if count > 0 {
		log.Println("ℹ️ waiter already exists:", waiterName)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	waiter := entity.Waiter{
		Name:         waiterName,
		PINHash:      string(hash),
		RestaurantID: rest.ID,
	}
	return db.Create(&waiter).Error
}
