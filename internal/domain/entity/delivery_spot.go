// Package entity contains the core business objects of the project.
package entity

// DeliverySpot is a predefined physical drop-off location a customer selects
// in lieu of a precise street address. Spots are static reference data; they
// are selected at runtime, never created or destroyed.
type DeliverySpot struct {
	ID        string  `json:"id"`        // Stable spot identifier, e.g. "spot_1".
	Name      string  `json:"name"`      // Display name, e.g. "Andheri Metro Station".
	Address   string  `json:"address"`   // Human-readable address of the spot.
	Latitude  float64 `json:"latitude"`  // Geographic latitude.
	Longitude float64 `json:"longitude"` // Geographic longitude.
	Distance  string  `json:"distance"`  // Display distance from the service zone, e.g. "100m".
	WalkTime  string  `json:"walk_time"` // Display walking time, e.g. "2 min walk".
	Type      string  `json:"type"`      // Category, e.g. "residential", "shopping".
	Available bool    `json:"available"` // Whether drones may currently drop here.
}

// LocationSelection is a user's delivery intent: the free-text address, the
// chosen drop-off spot and whether their terrace is drone-accessible.
// Persisted on every change; reset on sign-out.
type LocationSelection struct {
	SelectedAddress   string        `json:"selected_address"`
	TerraceAccessible bool          `json:"terrace_accessible"`
	UserLocation      *GeoPoint     `json:"user_location,omitempty"`
	SelectedSpot      *DeliverySpot `json:"selected_delivery_spot,omitempty"`
}

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HasAddress reports whether a delivery address has been entered.
func (s *LocationSelection) HasAddress() bool {
	return s != nil && s.SelectedAddress != ""
}

// HasSpot reports whether a delivery spot has been chosen.
func (s *LocationSelection) HasSpot() bool {
	return s != nil && s.SelectedSpot != nil
}
