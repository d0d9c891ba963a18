package dashboard

// Stats is the summary block rendered on the clinic dashboard.
type Stats struct {
	TotalPatients     int `json:"totalPatients"`
	TodayAppointments int `json:"todayAppointments"`
	ActiveStaff       int `json:"activeStaff"`
	MonthlyRevenue    int `json:"monthlyRevenue"`
}
