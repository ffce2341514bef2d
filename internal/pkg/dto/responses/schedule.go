package responses

// Slot is one bookable unit as exposed over the API. Date is "2006-01-02",
// Time is "15:04".
type Slot struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

type ScheduleSlots struct {
	Slots      []Slot `json:"slots"`
	TotalSlots int    `json:"total_slots"`
}
