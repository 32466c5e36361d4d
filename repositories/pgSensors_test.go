package repositories

import (
	"errors"
	"strings"
	"testing"

	"smartcampus-server/db"
	"smartcampus-server/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) db.Database {
	t.Helper()
	// Unique in-memory DB per test to avoid cross-test contamination.
	dsn := "file:repo_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "?mode=memory&cache=shared"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &db.GormDatabase{DB: gormDB}
}

func TestApplyTelemetryAutoCreates(t *testing.T) {
	repo := NewSensorPgRepository(openTestDB(t))

	sensor, err := repo.ApplyTelemetry(entities.Telemetry{SensorID: "new1", Power: 4.2}, true)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if sensor.SensorID != "new1" {
		t.Fatalf("expected sensor_id new1, got %q", sensor.SensorID)
	}
	if sensor.Power != 4.2 || sensor.Temp != 0 || sensor.Voltage != 0 || sensor.Current != 0 {
		t.Fatalf("expected zero-filled gauges, got %+v", sensor)
	}
	if sensor.Status != entities.SensorStatusActive {
		t.Fatalf("expected default status active, got %q", sensor.Status)
	}
	if sensor.Threshold != 5 {
		t.Fatalf("expected default threshold 5, got %v", sensor.Threshold)
	}
	if len(sensor.Trend) != 1 || sensor.Trend[0] != 4.2 {
		t.Fatalf("expected trend [4.2], got %v", sensor.Trend)
	}
	if sensor.LastUpdated.IsZero() {
		t.Fatalf("expected LastUpdated to be stamped")
	}
}

func TestApplyTelemetryRejectsUnknownWithoutAutoCreate(t *testing.T) {
	repo := NewSensorPgRepository(openTestDB(t))

	_, err := repo.ApplyTelemetry(entities.Telemetry{SensorID: "ghost", Power: 1}, false)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no record created, got %d", count)
	}
}

func TestApplyTelemetryTrendWindow(t *testing.T) {
	repo := NewSensorPgRepository(openTestDB(t))

	var sensor *entities.Sensor
	var err error
	for i := 1; i <= 11; i++ {
		sensor, err = repo.ApplyTelemetry(entities.Telemetry{SensorID: "s1", Power: float64(i)}, true)
		if err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}

	if len(sensor.Trend) != entities.TrendWindow {
		t.Fatalf("expected trend length %d, got %d", entities.TrendWindow, len(sensor.Trend))
	}
	// Oldest entry evicted: window is [2..11] in arrival order.
	for i, want := range []float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11} {
		if sensor.Trend[i] != want {
			t.Fatalf("trend[%d] = %v, want %v (trend %v)", i, sensor.Trend[i], want, sensor.Trend)
		}
	}
}

func TestApplyTelemetryOverwritesGauges(t *testing.T) {
	repo := NewSensorPgRepository(openTestDB(t))

	if _, err := repo.ApplyTelemetry(entities.Telemetry{SensorID: "s1", Power: 2, Temp: 21, Voltage: 230, Current: 9}, true); err != nil {
		t.Fatalf("apply: %v", err)
	}
	// A report without the optional gauges zero-fills, not merges.
	sensor, err := repo.ApplyTelemetry(entities.Telemetry{SensorID: "s1", Power: 3}, true)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if sensor.Power != 3 || sensor.Temp != 0 || sensor.Voltage != 0 || sensor.Current != 0 {
		t.Fatalf("expected wholesale overwrite, got %+v", sensor)
	}
	if len(sensor.Trend) != 2 || sensor.Trend[0] != 2 || sensor.Trend[1] != 3 {
		t.Fatalf("expected trend [2 3], got %v", sensor.Trend)
	}
}

func TestPatchDoesNotTouchTrend(t *testing.T) {
	repo := NewSensorPgRepository(openTestDB(t))

	var sensor *entities.Sensor
	var err error
	for i := 1; i <= 3; i++ {
		sensor, err = repo.ApplyTelemetry(entities.Telemetry{SensorID: "s1", Power: float64(i)}, true)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
	}

	patched, err := repo.Patch(sensor.ID, map[string]any{"status": entities.SensorStatusWarning, "threshold": 9.5})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}

	if patched.Status != entities.SensorStatusWarning || patched.Threshold != 9.5 {
		t.Fatalf("patch not applied: %+v", patched)
	}
	if len(patched.Trend) != 3 || patched.Trend[0] != 1 || patched.Trend[2] != 3 {
		t.Fatalf("patch must not touch trend, got %v", patched.Trend)
	}
}

func TestPatchUnknownKeyFails(t *testing.T) {
	repo := NewSensorPgRepository(openTestDB(t))

	_, err := repo.Patch("missing", map[string]any{"status": entities.SensorStatusInactive})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}

	count, _ := repo.Count()
	if count != 0 {
		t.Fatalf("patch must never create a record, got %d", count)
	}
}

func TestPatchResolvesBuildingName(t *testing.T) {
	database := openTestDB(t)
	buildings := NewBuildingPgRepository(database)
	repo := NewSensorPgRepository(database)

	building := entities.Building{Name: "Labs", Code: "LAB-001"}
	if err := buildings.Create(&building); err != nil {
		t.Fatalf("create building: %v", err)
	}
	sensor := entities.Sensor{SensorID: "s1"}
	if err := repo.Create(&sensor); err != nil {
		t.Fatalf("create sensor: %v", err)
	}

	patched, err := repo.Patch(sensor.ID, map[string]any{"building_id": building.ID})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.BuildingName != "Labs" {
		t.Fatalf("expected building name re-denormalized, got %q", patched.BuildingName)
	}
}

func TestGetAllSortsByBuildingName(t *testing.T) {
	repo := NewSensorPgRepository(openTestDB(t))

	for _, s := range []entities.Sensor{
		{SensorID: "z1", BuildingName: "Library"},
		{SensorID: "a1", BuildingName: "Admin"},
		{SensorID: "m1", BuildingName: "Hostels"},
	} {
		sensor := s
		if err := repo.Create(&sensor); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	sensors, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(sensors) != 3 {
		t.Fatalf("expected 3 sensors, got %d", len(sensors))
	}
	for i, want := range []string{"Admin", "Hostels", "Library"} {
		if sensors[i].BuildingName != want {
			t.Fatalf("order[%d] = %q, want %q", i, sensors[i].BuildingName, want)
		}
	}
}
