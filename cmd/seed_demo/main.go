// Seeds a demo site: two accounts, suppliers, appliances and a few days of
// sample logs. Intended for local development against a fresh database.
package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/chefcheck/chefcheck/internal/compliance"
	"github.com/chefcheck/chefcheck/internal/config"
	"github.com/chefcheck/chefcheck/internal/database"
	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/chefcheck/chefcheck/internal/utils"
	"github.com/google/uuid"
)

func fp(v float64) *float64 { return &v }

func mustHash(password string) string {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return hashed
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	err = db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Appliance{},
		&models.TemperatureLog{},
		&models.DeliveryLog{},
		&models.DeliveryItem{},
		&models.ProductionLog{},
		&models.CleaningTask{},
		&models.CleaningChecklistItem{},
		&models.SystemParameters{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Database already has users; refusing to seed over existing data")
		return
	}

	params := models.DefaultParameters()
	if err := db.Create(&params).Error; err != nil {
		log.Fatalf("Failed to create parameters: %v", err)
	}
	defaults := models.DefaultRanges()

	admin := models.User{
		ID:       uuid.NewString(),
		Name:     "Alex Morgan",
		Email:    "admin@chefcheck.local",
		Password: mustHash("admin1234"),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	staff := models.User{
		ID:       uuid.NewString(),
		Name:     "Sam Reilly",
		Email:    "sam@chefcheck.local",
		Password: mustHash("staff1234"),
		Role:     models.RoleStaff,
		IsActive: true,
	}
	if err := db.Create(&[]models.User{admin, staff}).Error; err != nil {
		log.Fatalf("Failed to create users: %v", err)
	}

	suppliers := []models.Supplier{
		{ID: uuid.NewString(), Name: "Fresh Farms Produce", ContactPerson: "J. Baker", Phone: "020 7946 0101", Email: "orders@freshfarms.example"},
		{ID: uuid.NewString(), Name: "Harbour Fish Co", ContactPerson: "M. Doyle", Phone: "020 7946 0102"},
	}
	if err := db.Create(&suppliers).Error; err != nil {
		log.Fatalf("Failed to create suppliers: %v", err)
	}

	appliances := []models.Appliance{
		{ID: uuid.NewString(), Name: "Main Fridge", Location: "Kitchen", Type: "Upright Fridge"},
		{ID: uuid.NewString(), Name: "Walk-in Freezer", Location: "Store Room", Type: "Walk-in Freezer"},
		{ID: uuid.NewString(), Name: "Hot Hold Unit", Location: "Service", Type: "Hot Hold", MinTemp: fp(65), MaxTemp: fp(90)},
		{ID: uuid.NewString(), Name: "Dough Mixer", Location: "Bakery", Type: "Mixer"},
	}
	if err := db.Create(&appliances).Error; err != nil {
		log.Fatalf("Failed to create appliances: %v", err)
	}

	now := time.Now()
	var tempLogs []models.TemperatureLog
	readings := []struct {
		appliance models.Appliance
		temp      float64
		hoursAgo  int
	}{
		{appliances[0], 3.4, 30},
		{appliances[0], 6.1, 6}, // out of range, needs corrective action
		{appliances[1], -19.5, 28},
		{appliances[2], 74.0, 4},
	}
	for _, rd := range readings {
		entry := models.TemperatureLog{
			ID:          uuid.NewString(),
			ApplianceID: rd.appliance.ID,
			Temperature: rd.temp,
			LogTime:     now.Add(-time.Duration(rd.hoursAgo) * time.Hour),
			IsCompliant: compliance.Evaluate(rd.temp, rd.appliance.MinTemp, rd.appliance.MaxTemp, rd.appliance.Type, defaults),
			LoggedBy:    staff.Name,
		}
		if !entry.IsCompliant {
			entry.CorrectiveAction = "Moved stock to Walk-in Freezer, engineer booked"
		}
		tempLogs = append(tempLogs, entry)
	}
	if err := db.Create(&tempLogs).Error; err != nil {
		log.Fatalf("Failed to create temperature logs: %v", err)
	}

	delivery := models.DeliveryLog{
		ID:           uuid.NewString(),
		SupplierID:   suppliers[0].ID,
		DeliveryTime: now.Add(-26 * time.Hour),
		VehicleReg:   "LD72 KXF",
		DriverName:   "P. Nowak",
		IsCompliant:  true,
		ReceivedBy:   staff.Name,
		Items: []models.DeliveryItem{
			{ID: uuid.NewString(), Name: "Chicken breast", Quantity: 10, Unit: "kg", Temperature: fp(2.1), IsCompliant: true},
			{ID: uuid.NewString(), Name: "Salad mix", Quantity: 6, Unit: "box", IsCompliant: true},
		},
	}
	if err := db.Create(&delivery).Error; err != nil {
		log.Fatalf("Failed to create delivery log: %v", err)
	}

	production := models.ProductionLog{
		ID:                   uuid.NewString(),
		ProductName:          "Beef Lasagne",
		BatchCode:            "BL-0410",
		LogTime:              now.Add(-8 * time.Hour),
		CriticalLimitDetails: "Core temp 82C for 2 min",
		IsCompliant:          true,
		VerifiedBy:           admin.Name,
	}
	if err := db.Create(&production).Error; err != nil {
		log.Fatalf("Failed to create production log: %v", err)
	}

	equipment, _ := json.Marshal([]string{"Degreaser", "Scraper", "Hot water"})
	task := models.CleaningTask{
		ID:          uuid.NewString(),
		Name:        "Deep clean fryer",
		Area:        "Kitchen",
		Frequency:   models.FrequencyWeekly,
		Description: "Drain oil, boil out, degrease exterior",
		Equipment:   equipment,
	}
	if err := db.Create(&task).Error; err != nil {
		log.Fatalf("Failed to create cleaning task: %v", err)
	}

	completedAt := now.Add(-20 * time.Hour)
	items := []models.CleaningChecklistItem{
		{ID: uuid.NewString(), TaskID: task.ID, Name: task.Name, Area: task.Area, Frequency: task.Frequency,
			Completed: true, CompletedAt: &completedAt, CompletedBy: staff.Name, Notes: "Oil changed"},
		{ID: uuid.NewString(), TaskID: task.ID, Name: task.Name, Area: task.Area, Frequency: task.Frequency},
	}
	if err := db.Create(&items).Error; err != nil {
		log.Fatalf("Failed to create checklist items: %v", err)
	}

	log.Println("Demo data seeded")
	log.Println("  admin: admin@chefcheck.local / admin1234")
	log.Println("  staff: sam@chefcheck.local / staff1234")
}
