package datetime

// Response is the rendered clock reading returned to callers.
type Response struct {
	DateTime string `json:"datetime"`
	Timezone string `json:"timezone"`
	Layout   string `json:"layout"`
}

const (
	timezoneUTC   = "UTC"
	displayLayout = "DD-MM-YYYY HH:MM:SS"
)
