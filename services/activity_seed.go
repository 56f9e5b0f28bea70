package services

import (
	"log"

	"licenca_flow_go/models"

	"gorm.io/gorm"
)

// defaultActivities is the starter activity catalogue used until the agency
// loads its full table
var defaultActivities = []models.Activity{
	{Codigo: "1.1", Nome: "Extração de areia", Descricao: strPtr("Extração de areia em leito de rio")},
	{Codigo: "1.2", Nome: "Extração de argila", Descricao: strPtr("Extração de argila para cerâmica")},
	{Codigo: "2.1", Nome: "Piscicultura", Descricao: strPtr("Criação de peixes em tanques escavados")},
	{Codigo: "3.1", Nome: "Suinocultura", Descricao: strPtr("Criação de suínos em regime confinado")},
}

func strPtr(s string) *string {
	return &s
}

// SeedActivities inserts the starter activity catalogue, skipping codes that
// already exist. Safe to run on every startup.
func SeedActivities(gdb *gorm.DB) error {
	for _, activity := range defaultActivities {
		var existing models.Activity
		err := gdb.Where("codigo = ?", activity.Codigo).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := gdb.Create(&activity).Error; err != nil {
			return err
		}
	}

	log.Println("[SEED] Activity catalogue ready")
	return nil
}
