package document

// Playlist is the top-level document Foundry's "Import Data" dialog accepts
// for a Playlist.
type Playlist struct {
	Folder      string        `json:"folder"`
	Name        string        `json:"name"`
	Sounds      []Sound       `json:"sounds"`
	Channel     string        `json:"channel"`
	Mode        int           `json:"mode"`
	Playing     bool          `json:"playing"`
	Fade        *int          `json:"fade"`
	Sorting     string        `json:"sorting"`
	Seed        int           `json:"seed"`
	Flags       PlaylistFlags `json:"flags"`
	Stats       Stats         `json:"_stats"`
	Description string        `json:"description"`
}

// Sound is one playlist entry.
type Sound struct {
	Name       string   `json:"name"`
	Path       string   `json:"path"`
	ID         string   `json:"_id"`
	Channel    string   `json:"channel"`
	Playing    bool     `json:"playing"`
	PausedTime *float64 `json:"pausedTime"`
	Repeat     bool     `json:"repeat"`
	Volume     float64  `json:"volume"`
	Fade       *int     `json:"fade"`
	Sort       int      `json:"sort"`
	Flags      struct{} `json:"flags"`
}

// PlaylistFlags holds the document flags.
type PlaylistFlags struct {
	ExportSource ExportSource `json:"exportSource"`
}

// ExportSource describes the world the document claims to come from.
type ExportSource struct {
	World         string `json:"world"`
	System        string `json:"system"`
	CoreVersion   string `json:"coreVersion"`
	SystemVersion string `json:"systemVersion"`
}

// Stats is the document's _stats block. Times are Unix seconds.
type Stats struct {
	CoreVersion    string `json:"coreVersion"`
	SystemID       string `json:"systemId"`
	SystemVersion  string `json:"systemVersion"`
	CreatedTime    int64  `json:"createdTime"`
	ModifiedTime   int64  `json:"modifiedTime"`
	LastModifiedBy string `json:"lastModifiedBy"`
}

// Fixed playback defaults.
const (
	ChannelMusic   = "music"
	ModeSequential = 1
	SortAlpha      = "a"
	DefaultVolume  = 0.5
)

// Default export metadata.
const (
	DefaultWorld               = "foundry-playlist-convertor"
	DefaultSystemID            = "pf2e"
	DefaultCoreVersion         = "12.331"
	DefaultExportSystemVersion = "6.11.1"
	DefaultSystemVersion       = "6.8.5"
)

// Metadata holds the version strings embedded in every document.
type Metadata struct {
	World               string
	SystemID            string
	CoreVersion         string
	ExportSystemVersion string
	SystemVersion       string
}

// DefaultMetadata returns the metadata used when nothing is configured.
func DefaultMetadata() Metadata {
	return Metadata{
		World:               DefaultWorld,
		SystemID:            DefaultSystemID,
		CoreVersion:         DefaultCoreVersion,
		ExportSystemVersion: DefaultExportSystemVersion,
		SystemVersion:       DefaultSystemVersion,
	}
}
