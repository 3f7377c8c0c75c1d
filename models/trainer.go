package models

// Trainer represents a gym trainer who can be booked for sessions.
type Trainer struct {
	ID             string   `bson:"id" json:"id"`                           // Unique trainer identifier (e.g., "trainer1")
	Name           string   `bson:"name" json:"name"`                       // Display name
	AvailableSlots []string `bson:"available_slots" json:"availableSlots"`  // Fallback slot times (HH:MM) used when no weekly schedule exists
}
