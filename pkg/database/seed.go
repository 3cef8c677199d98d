package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frota-backend/internal/models"
)

var seedDepartments = []models.Department{
	{Name: "Gabinete", IsActive: true, Priority: 1},
	{Name: "Secretaria Executiva do Agronegócio", Code: "AGR", IsActive: true, Priority: 2},
	{Name: "Secretaria Executiva da Indústria", Code: "IND", IsActive: true, Priority: 3},
	{Name: "Secretaria Executiva de Comércio, Serviço e Inovação", Code: "CSI", IsActive: true, Priority: 4},
	{Name: "Secretaria Executiva de Planejamento e Gestão Interna", Code: "PGI, COPLA, COAFI, COGEP e COTEC", IsActive: true, Priority: 5},
	{Name: "Assessoria Jurídica", Code: "ASJUR", IsActive: true, Priority: 6},
	{Name: "Assessoria de Controle Interno e Ouvidoria", Code: "ASCOU", IsActive: true, Priority: 7},
	{Name: "Assessoria de Comunicação", Code: "ASCOM", IsActive: true, Priority: 8},
}

// Seed upserts the department catalog and the bootstrap admin account.
// Reruns are no-ops for rows that already exist.
func Seed(db *gorm.DB) error {
	for i := range seedDepartments {
		dept := seedDepartments[i]
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&dept).Error
		if err != nil {
			return err
		}
	}

	var dept models.Department
	if err := db.Where("name = ?", "Secretaria Executiva de Planejamento e Gestão Interna").First(&dept).Error; err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Administrador",
		Email:        "admin@email.com",
		CPF:          "58931550090",
		Password:     string(hashed),
		Role:         models.RoleAdmin,
		DepartmentID: &dept.ID,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
}
