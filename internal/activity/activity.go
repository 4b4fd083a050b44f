package activity

import (
	"fmt"
	"sort"
	"time"

	"github.com/chefcheck/chefcheck/internal/models"
)

// DefaultLimit is the feed size used when the caller does not ask for one.
const DefaultLimit = 5

// Log kinds as they appear in the feed.
const (
	KindProduction  = "production"
	KindTemperature = "temperature"
	KindDelivery    = "delivery"
	KindCleaning    = "cleaning"
)

// Entry is the common shape every log kind is mapped to for the dashboard feed
type Entry struct {
	ID             string    `json:"id"`
	LogType        string    `json:"logType"`
	Timestamp      time.Time `json:"timestamp"`
	Description    string    `json:"description"`
	User           string    `json:"user,omitempty"`
	IsNonCompliant bool      `json:"isNonCompliant,omitempty"`
}

// Lookups maps entity ids to display names for the feed descriptions
type Lookups struct {
	ApplianceNames map[string]string
	SupplierNames  map[string]string
}

// ApplianceLookup builds an id -> name map from an appliance collection
func ApplianceLookup(appliances []models.Appliance) map[string]string {
	m := make(map[string]string, len(appliances))
	for _, a := range appliances {
		m[a.ID] = a.Name
	}
	return m
}

// SupplierLookup builds an id -> name map from a supplier collection
func SupplierLookup(suppliers []models.Supplier) map[string]string {
	m := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		m[s.ID] = s.Name
	}
	return m
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "Unknown"
}

// FromProduction maps a production log to a feed entry
func FromProduction(l models.ProductionLog) Entry {
	return Entry{
		ID:             l.ID,
		LogType:        KindProduction,
		Timestamp:      l.LogTime,
		Description:    fmt.Sprintf("Production: %s (Batch #%s)", l.ProductName, l.BatchCode),
		User:           l.VerifiedBy,
		IsNonCompliant: !l.IsCompliant,
	}
}

// FromTemperature maps a temperature log to a feed entry
func FromTemperature(l models.TemperatureLog, lk Lookups) Entry {
	return Entry{
		ID:             l.ID,
		LogType:        KindTemperature,
		Timestamp:      l.LogTime,
		Description:    fmt.Sprintf("Temperature: %s at %.1f°C", displayName(lk.ApplianceNames, l.ApplianceID), l.Temperature),
		User:           l.LoggedBy,
		IsNonCompliant: !l.IsCompliant,
	}
}

// FromDelivery maps a delivery log to a feed entry
func FromDelivery(l models.DeliveryLog, lk Lookups) Entry {
	return Entry{
		ID:             l.ID,
		LogType:        KindDelivery,
		Timestamp:      l.DeliveryTime,
		Description:    fmt.Sprintf("Delivery received from %s", displayName(lk.SupplierNames, l.SupplierID)),
		User:           l.ReceivedBy,
		IsNonCompliant: !l.IsCompliant,
	}
}

// FromCleaning maps a completed checklist item to a feed entry. Items without
// a completion timestamp do not belong in the feed; callers filter first.
func FromCleaning(item models.CleaningChecklistItem) Entry {
	var ts time.Time
	if item.CompletedAt != nil {
		ts = *item.CompletedAt
	}
	return Entry{
		ID:          item.ID,
		LogType:     KindCleaning,
		Timestamp:   ts,
		Description: fmt.Sprintf("Cleaning completed: %s (%s)", item.Name, item.Area),
		User:        item.CompletedBy,
	}
}

// Recent merges the four log collections into one feed ordered most recent
// first and returns at most limit entries. A limit <= 0 means DefaultLimit.
// Empty input yields an empty feed, never an error. Entries with equal
// timestamps keep their insertion order (production, temperature, delivery,
// cleaning).
func Recent(
	production []models.ProductionLog,
	temperatures []models.TemperatureLog,
	deliveries []models.DeliveryLog,
	cleaning []models.CleaningChecklistItem,
	lk Lookups,
	limit int,
) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	entries := make([]Entry, 0, len(production)+len(temperatures)+len(deliveries)+len(cleaning))
	for _, l := range production {
		entries = append(entries, FromProduction(l))
	}
	for _, l := range temperatures {
		entries = append(entries, FromTemperature(l, lk))
	}
	for _, l := range deliveries {
		entries = append(entries, FromDelivery(l, lk))
	}
	for _, item := range cleaning {
		if !item.Completed || item.CompletedAt == nil {
			continue
		}
		entries = append(entries, FromCleaning(item))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
