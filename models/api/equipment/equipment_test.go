package equipmentapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "crewtime-backend/models/db"
)

func TestCreateEquipmentDataValidate(t *testing.T) {
	t.Run(`valid data passes`, func(t *testing.T) {
		data := CreateEquipmentData{Name: "Excavator 12", Tag: dbmodels.EquipmentTagHeavy}
		require.Nil(t, data.Validate())
	})

	t.Run(`name required`, func(t *testing.T) {
		data := CreateEquipmentData{Tag: dbmodels.EquipmentTagTruck}
		require.NotNil(t, data.Validate())
	})

	t.Run(`tag required`, func(t *testing.T) {
		data := CreateEquipmentData{Name: "Excavator 12"}
		require.NotNil(t, data.Validate())
	})

	t.Run(`unknown tag rejected`, func(t *testing.T) {
		data := CreateEquipmentData{Name: "Excavator 12", Tag: "SUBMARINE"}
		require.NotNil(t, data.Validate())
	})
}
