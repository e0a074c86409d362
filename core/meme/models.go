package meme

// Meme is one gallery image with its vote tallies. UploadedAt is an ISO
// timestamp; Filename is the stored (randomized) name, OriginalName the
// client's.
type Meme struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	UploadedBy   string `json:"uploadedBy,omitempty"`
	UploadedAt   string `json:"uploadedAt"`
	Caption      string `json:"caption,omitempty"`
	Upvotes      int    `json:"upvotes"`
	Downvotes    int    `json:"downvotes"`
	Score        int    `json:"score"`
}

// NewMeme contains information needed to register an uploaded meme image.
type NewMeme struct {
	Filename     string
	OriginalName string
	UploadedBy   string
	Caption      string
}

// Vote types
const (
	VoteUp   = "up"
	VoteDown = "down"
)
