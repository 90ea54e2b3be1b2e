package metadomain

type Ad struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	EffectiveStatus string     `json:"effective_status"`
	AdsetID         string     `json:"adset_id"`
	CampaignID      string     `json:"campaign_id"`
	Creative        AdCreative `json:"creative"`
}

type AdCreative struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Title            string `json:"title"`
	Body             string `json:"body"`
	ImageURL         string `json:"image_url"`
	ThumbnailURL     string `json:"thumbnail_url"`
	ObjectStoryID    string `json:"object_story_id"`
	CallToActionType string `json:"call_to_action_type"`
}
