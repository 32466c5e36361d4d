package seed

import (
	"log"

	"smartcampus-server/db"
	"smartcampus-server/entities"
	"smartcampus-server/repositories"

	"golang.org/x/crypto/bcrypt"
)

// Run bootstraps demo users, buildings and sensors on an empty
// database. Tables that already hold rows are left alone.
func Run(database db.Database) error {
	if err := seedUsers(database); err != nil {
		return err
	}
	return seedBuildingsAndSensors(database)
}

func seedUsers(database db.Database) error {
	users := repositories.NewUserPgRepository(database)

	count, err := users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		name, email, password, role, building string
	}{
		{"Admin User", "admin@example.com", "admin123", entities.RoleAdmin, ""},
		{"Operator User", "operator@example.com", "operator123", entities.RoleOperator, "Labs"},
		{"Viewer User", "viewer@example.com", "viewer123", entities.RoleViewer, "Library"},
	}
	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entities.User{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
			Building:     d.building,
		}
		if err := users.Create(&user); err != nil {
			return err
		}
	}

	log.Println("Users seeded")
	return nil
}

func seedBuildingsAndSensors(database db.Database) error {
	buildings := repositories.NewBuildingPgRepository(database)
	sensors := repositories.NewSensorPgRepository(database)

	count, err := buildings.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []entities.Building{
		{Name: "Labs", Code: "LAB-001", Location: "Block A", Capacity: 50, Manager: "Dr. Singh"},
		{Name: "Hostels", Code: "HST-001", Location: "Block B", Capacity: 200, Manager: "Mrs. Patel"},
		{Name: "Library", Code: "LIB-001", Location: "Block C", Capacity: 100, Manager: "Mr. Kumar"},
		{Name: "Admin", Code: "ADM-001", Location: "Block D", Capacity: 75, Manager: "Ms. Sharma"},
	}
	for i := range defaults {
		if err := buildings.Create(&defaults[i]); err != nil {
			return err
		}
	}

	demoSensors := []entities.Sensor{
		{SensorID: "lab101-ac", BuildingID: defaults[0].ID, BuildingName: "Labs", Name: "Lab AC 101", Type: entities.SensorTypeAC, Power: 2.47, Temp: 24.3, Threshold: 3.0},
		{SensorID: "lab-meter", BuildingID: defaults[0].ID, BuildingName: "Labs", Name: "Main Meter", Type: entities.SensorTypeMeter, Power: 15.2, Threshold: 20},
		{SensorID: "hst101-ac", BuildingID: defaults[1].ID, BuildingName: "Hostels", Name: "Hostel AC 101", Type: entities.SensorTypeAC, Power: 3.2, Temp: 25.1, Threshold: 3.5},
		{SensorID: "hst-meter", BuildingID: defaults[1].ID, BuildingName: "Hostels", Name: "Main Meter", Type: entities.SensorTypeMeter, Power: 22.5, Threshold: 30},
		{SensorID: "lib101-ac", BuildingID: defaults[2].ID, BuildingName: "Library", Name: "Library AC 101", Type: entities.SensorTypeAC, Power: 2.6, Temp: 22.5, Threshold: 3.0},
	}
	for i := range demoSensors {
		if err := sensors.Create(&demoSensors[i]); err != nil {
			return err
		}
	}

	log.Println("Buildings & sensors seeded")
	return nil
}
