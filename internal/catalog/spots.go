package catalog

import "drogo/internal/domain/entity"

// seedSpots lists the Andheri West drop-off spots the drones are certified
// for. Selected at runtime, never created or destroyed.
var seedSpots = []entity.DeliverySpot{
	{
		ID:        "spot_1",
		Name:      "Andheri Metro Station",
		Address:   "Andheri West Metro Station, Mumbai",
		Latitude:  19.1197,
		Longitude: 72.8464,
		Distance:  "100m",
		WalkTime:  "2 min walk",
		Type:      "main_entrance",
		Available: true,
	},
	{
		ID:        "spot_2",
		Name:      "Infiniti Mall",
		Address:   "New Link Road, Andheri West",
		Latitude:  19.1170,
		Longitude: 72.8426,
		Distance:  "150m",
		WalkTime:  "2 min walk",
		Type:      "shopping",
		Available: true,
	},
	{
		ID:        "spot_3",
		Name:      "Oshiwara Bus Depot",
		Address:   "Oshiwara, Andheri West",
		Latitude:  19.1449,
		Longitude: 72.8367,
		Distance:  "200m",
		WalkTime:  "3 min walk",
		Type:      "residential",
		Available: true,
	},
	{
		ID:        "spot_4",
		Name:      "Lokhandwala Complex",
		Address:   "Lokhandwala, Andheri West",
		Latitude:  19.1408,
		Longitude: 72.8347,
		Distance:  "180m",
		WalkTime:  "3 min walk",
		Type:      "residential",
		Available: true,
	},
	{
		ID:        "spot_5",
		Name:      "Versova Beach",
		Address:   "Versova, Andheri West",
		Latitude:  19.1314,
		Longitude: 72.8137,
		Distance:  "300m",
		WalkTime:  "4 min walk",
		Type:      "recreational",
		Available: true,
	},
	{
		ID:        "spot_6",
		Name:      "Four Bungalows",
		Address:   "Four Bungalows, Andheri West",
		Latitude:  19.1180,
		Longitude: 72.8226,
		Distance:  "250m",
		WalkTime:  "3 min walk",
		Type:      "residential",
		Available: true,
	},
	{
		ID:        "spot_7",
		Name:      "MIDC Central Road",
		Address:   "MIDC, Andheri East",
		Latitude:  19.1136,
		Longitude: 72.8697,
		Distance:  "400m",
		WalkTime:  "5 min walk",
		Type:      "industrial",
		Available: true,
	},
}

// sampleAddresses feeds address suggestions for the manual-entry flow.
var sampleAddresses = []string{
	"Andheri Metro Station, Andheri West, Mumbai, Maharashtra",
	"Infiniti Mall, New Link Road, Andheri West, Mumbai",
	"Lokhandwala Complex, Andheri West, Mumbai, Maharashtra",
	"Oshiwara Bus Depot, Oshiwara, Andheri West, Mumbai",
	"Versova Beach, Versova, Andheri West, Mumbai",
	"Four Bungalows, Andheri West, Mumbai, Maharashtra",
	"MIDC Central Road, Andheri East, Mumbai, Maharashtra",
}

// DeliverySpots returns a copy of the seed spot list.
func DeliverySpots() []entity.DeliverySpot {
	out := make([]entity.DeliverySpot, len(seedSpots))
	copy(out, seedSpots)

	return out
}

// SpotByID looks up a delivery spot by its identifier.
func SpotByID(id string) (entity.DeliverySpot, bool) {
	for _, spot := range seedSpots {
		if spot.ID == id {
			return spot, true
		}
	}

	return entity.DeliverySpot{}, false
}

// SampleAddresses returns a copy of the address suggestion seed list.
func SampleAddresses() []string {
	out := make([]string, len(sampleAddresses))
	copy(out, sampleAddresses)

	return out
}
