package models

// WorkingDays is the number of entries in a weekly schedule (Monday..Saturday).
// Sunday is always closed and has no entry.
const WorkingDays = 6

// TimeSlot is a single offerable time within a day's template.
type TimeSlot struct {
	Time      string `bson:"time" json:"time"`           // "HH:MM", 24h, unique within its day
	Available bool   `bson:"available" json:"available"` // toggled by the trainer; only meaningful for template times
}

// DaySchedule holds one working day's slot toggles. Day is a display label;
// lookups are by index (Monday=0 .. Saturday=5).
type DaySchedule struct {
	Day   string     `bson:"day" json:"day"`
	Slots []TimeSlot `bson:"slots" json:"slots"`
}

// TrainerSchedule is a trainer's weekly availability, replaced wholesale on save.
type TrainerSchedule struct {
	TrainerID      string        `bson:"trainer_id" json:"trainerId"`
	TrainerName    string        `bson:"trainer_name" json:"trainerName"`
	WeeklySchedule []DaySchedule `bson:"weekly_schedule" json:"weeklySchedule"` // exactly WorkingDays entries
}

// DayNames are the display labels for the working days, Monday first.
var DayNames = [WorkingDays]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// weekdayTemplate covers Monday-Friday, hourly from 06:00 through 20:00.
var weekdayTemplate = []string{
	"06:00", "07:00", "08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// saturdayTemplate is the shorter Saturday run, 06:00 through 12:00.
var saturdayTemplate = []string{"06:00", "07:00", "08:00", "09:00", "10:00", "11:00", "12:00"}

// TemplateForDay returns the fixed ordered slot times a working day can ever
// offer. dayIndex follows the weekly schedule indexing (Monday=0 .. Saturday=5).
func TemplateForDay(dayIndex int) []string {
	if dayIndex == WorkingDays-1 {
		return saturdayTemplate
	}
	return weekdayTemplate
}

// BuildWeeklySchedule constructs a full weekly schedule where exactly the
// given times are toggled available on every day they appear in the template.
func BuildWeeklySchedule(availableTimes []string) []DaySchedule {
	enabled := make(map[string]bool, len(availableTimes))
	for _, t := range availableTimes {
		enabled[t] = true
	}

	week := make([]DaySchedule, 0, WorkingDays)
	for dayIndex, day := range DayNames {
		template := TemplateForDay(dayIndex)
		slots := make([]TimeSlot, 0, len(template))
		for _, t := range template {
			slots = append(slots, TimeSlot{Time: t, Available: enabled[t]})
		}
		week = append(week, DaySchedule{Day: day, Slots: slots})
	}
	return week
}
