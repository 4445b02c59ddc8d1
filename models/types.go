package models

// DownloadRequest represents the incoming download request
type DownloadRequest struct {
	URL      string `json:"url"`
	Source   string `json:"source"`   // "youtube" or "soundcloud"
	Playlist bool   `json:"playlist"` // SoundCloud playlists only
	Format   string `json:"format"`   // mp4, mp3, wav
	Quality  string `json:"quality"`  // resolution key, bitrate key, or "best"
}

// ValidateRequest is the body of POST /api/validate
type ValidateRequest struct {
	URL string `json:"url"`
}

// ValidateResponse reports the detected source and playlist candidacy
type ValidateResponse struct {
	OK       bool   `json:"ok"`
	Valid    bool   `json:"valid"`
	Source   string `json:"source,omitempty"`
	Playlist *bool  `json:"playlist,omitempty"`
}

// ErrorResponse for failed API requests
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthResponse for health check
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// MediaInfo is the metadata structure returned by the extraction engine.
// Playlists carry their items in Entries, each shaped the same way.
type MediaInfo struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Thumbnail   string       `json:"thumbnail"`
	Thumbnails  []Thumbnail  `json:"thumbnails"`
	Entries     []*MediaInfo `json:"entries"`
}

// Thumbnail is one entry of a media item's thumbnail list, ordered by the
// engine from lowest to highest resolution.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
