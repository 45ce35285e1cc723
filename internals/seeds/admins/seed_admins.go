// internals/seeds/admins/seed_admins.go
package admins

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	adminModel "sakanku_backend/internals/features/admins/admin/model"
	authService "sakanku_backend/internals/features/admins/auth/service"
)

type AdminSeed struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// SeedAdminsFromJSON inserts the admins listed in the JSON file, skipping
// any email that already exists.
func SeedAdminsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading admin seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file: %v", err)
		return
	}

	var inputs []AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Failed to decode seed file: %v", err)
		return
	}

	for _, data := range inputs {
		var existing adminModel.AdminModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Admin '%s' already exists, skipping.", data.Email)
			continue
		}

		hashed, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.Email, err)
			continue
		}

		admin := adminModel.AdminModel{
			FullName: data.FullName,
			Email:    data.Email,
			Phone:    data.Phone,
			Role:     adminModel.AdminRole(data.Role),
			Password: hashed,
		}
		admin.SetDefaultValues()

		if err := db.Create(&admin).Error; err != nil {
			log.Printf("❌ Failed to seed admin '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Seeded admin '%s' (%s)", data.Email, admin.Role)
	}
}
