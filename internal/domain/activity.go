package domain

type Activity struct {
	ID          string `json:"activity_id"`
	DisplayName string `json:"display_name"`
}

// FallbackActivities is served when the remote catalog is unreachable.
var FallbackActivities = []Activity{
	{ID: "1", DisplayName: "board games"},
	{ID: "2", DisplayName: "volleyball"},
	{ID: "3", DisplayName: "karaoke"},
	{ID: "4", DisplayName: "movie"},
}
