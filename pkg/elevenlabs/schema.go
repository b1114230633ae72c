package elevenlabs

import (
	"encoding/json"

	// Packages
	"github.com/mutablelogic/go-client/pkg/multipart"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES - VOICES

type Voice struct {
	Id          string            `json:"voice_id" writer:",width:22"`
	Name        string            `json:"name" writer:",width:30"`
	Category    string            `json:"category,omitempty" writer:",width:12"`
	Description string            `json:"description,omitempty" writer:",wrap,width:40"`
	Labels      map[string]string `json:"labels,omitempty" writer:"-"`
	Samples     []Sample          `json:"samples,omitempty" writer:"-"`
	Settings    *VoiceSettings    `json:"settings,omitempty" writer:"-"`
	PreviewUrl  string            `json:"preview_url,omitempty" writer:"-"`
}

type VoiceSettings struct {
	Stability       float64  `json:"stability"`
	SimilarityBoost float64  `json:"similarity_boost"`
	Style           *float64 `json:"style,omitempty"`
	UseSpeakerBoost *bool    `json:"use_speaker_boost,omitempty"`
}

type Sample struct {
	Id        string `json:"sample_id" writer:",width:22"`
	FileName  string `json:"file_name" writer:",width:30"`
	MimeType  string `json:"mime_type,omitempty" writer:",width:12"`
	SizeBytes int64  `json:"size_bytes,omitempty" writer:",right"`
	Hash      string `json:"hash,omitempty" writer:"-"`
}

// VoiceId is the name and identifier of a voice
type VoiceId struct {
	Name string `json:"name" writer:",width:30"`
	Id   string `json:"voice_id" writer:",width:22"`
}

// SampleId is the file name and identifier of a voice sample
type SampleId struct {
	Name string `json:"name" writer:",width:30"`
	Id   string `json:"sample_id" writer:",width:22"`
}

// VoiceRequest is the multipart body for adding or editing a voice. Labels
// are encoded as a JSON object, and each file is sent as a "files" part
type VoiceRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Labels      string           `json:"labels,omitempty"`
	Files       []multipart.File `json:"files,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// TYPES - MODELS

type Model struct {
	Id                 string          `json:"model_id" writer:",width:30"`
	Name               string          `json:"name" writer:",width:30"`
	Description        string          `json:"description,omitempty" writer:",wrap,width:40"`
	CanDoTextToSpeech  bool            `json:"can_do_text_to_speech"`
	CanDoVoiceConvert  bool            `json:"can_do_voice_conversion,omitempty" writer:"-"`
	TokenCostFactor    float64         `json:"token_cost_factor,omitempty" writer:",right"`
	MaxCharacterLength uint64          `json:"max_characters_request_free_user,omitempty" writer:"-"`
	Languages          []ModelLanguage `json:"languages,omitempty" writer:"-"`
}

type ModelLanguage struct {
	Id   string `json:"language_id"`
	Name string `json:"name"`
}

/////////////////////////////////////////////////////////////////////////////////
// TYPES - TEXT TO SPEECH

type TextToSpeechRequest struct {
	Text          string         `json:"text"`
	Model         string         `json:"model_id,omitempty"`
	VoiceSettings *VoiceSettings `json:"voice_settings,omitempty"`
	Language      *string        `json:"language_code,omitempty"`
	Seed          *uint64        `json:"seed,omitempty"`
	Format        string         `json:"-"` // Query parameter output_format
	Latency       uint           `json:"-"` // Query parameter optimize_streaming_latency, 0 to 4
}

/////////////////////////////////////////////////////////////////////////////////
// TYPES - HISTORY

type History struct {
	Items   []HistoryItem `json:"history"`
	LastId  string        `json:"last_history_item_id,omitempty"`
	HasMore bool          `json:"has_more"`
}

type HistoryItem struct {
	Id            string         `json:"history_item_id" writer:",width:22"`
	RequestId     string         `json:"request_id,omitempty" writer:"-"`
	VoiceId       string         `json:"voice_id" writer:"-"`
	VoiceName     string         `json:"voice_name,omitempty" writer:",width:20"`
	Model         string         `json:"model_id,omitempty" writer:"-"`
	Text          string         `json:"text" writer:",wrap,width:50"`
	Date          int64          `json:"date_unix" writer:",right"`
	CharsFrom     int64          `json:"character_count_change_from" writer:"-"`
	CharsTo       int64          `json:"character_count_change_to" writer:"-"`
	ContentType   string         `json:"content_type,omitempty" writer:"-"`
	State         string         `json:"state,omitempty" writer:",width:10"`
	VoiceSettings *VoiceSettings `json:"settings,omitempty" writer:"-"`
}

/////////////////////////////////////////////////////////////////////////////////
// TYPES - USER

type User struct {
	Subscription         *Subscription `json:"subscription"`
	IsNewUser            bool          `json:"is_new_user"`
	ApiKey               string        `json:"xi_api_key,omitempty"`
	CanUseDelayedPayment bool          `json:"can_use_delayed_payment_methods"`
}

type Subscription struct {
	Tier                         string `json:"tier"`
	CharacterCount               int64  `json:"character_count"`
	CharacterLimit               int64  `json:"character_limit"`
	CanExtendCharacterLimit      bool   `json:"can_extend_character_limit"`
	AllowedToExtendCharLimit     bool   `json:"allowed_to_extend_character_limit"`
	NextCharacterCountResetUnix  int64  `json:"next_character_count_reset_unix"`
	VoiceLimit                   int64  `json:"voice_limit"`
	ProfessionalVoiceLimit       int64  `json:"professional_voice_limit"`
	CanExtendVoiceLimit          bool   `json:"can_extend_voice_limit"`
	CanUseInstantVoiceCloning    bool   `json:"can_use_instant_voice_cloning"`
	CanUseProfessionalVoiceClone bool   `json:"can_use_professional_voice_cloning"`
	Currency                     string `json:"currency,omitempty"`
	Status                       string `json:"status,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// TYPES - PROJECTS

type Project struct {
	Id                      string    `json:"project_id" writer:",width:22"`
	Name                    string    `json:"name" writer:",width:30"`
	CreateDate              int64     `json:"create_date_unix" writer:",right"`
	DefaultTitleVoiceId     string    `json:"default_title_voice_id,omitempty" writer:"-"`
	DefaultParagraphVoiceId string    `json:"default_paragraph_voice_id,omitempty" writer:"-"`
	DefaultModelId          string    `json:"default_model_id,omitempty" writer:"-"`
	LastConversionDate      int64     `json:"last_conversion_date_unix,omitempty" writer:"-"`
	CanBeDownloaded         bool      `json:"can_be_downloaded"`
	Title                   string    `json:"title,omitempty" writer:"-"`
	Author                  string    `json:"author,omitempty" writer:"-"`
	IsbnNumber              string    `json:"isbn_number,omitempty" writer:"-"`
	VolumeNormalization     bool      `json:"volume_normalization,omitempty" writer:"-"`
	State                   string    `json:"state,omitempty" writer:",width:12"`
	Chapters                []Chapter `json:"chapters,omitempty" writer:"-"`
}

type Chapter struct {
	Id                 string             `json:"chapter_id" writer:",width:22"`
	Name               string             `json:"name" writer:",width:30"`
	LastConversionDate int64              `json:"last_conversion_date_unix,omitempty" writer:"-"`
	ConversionProgress float64            `json:"conversion_progress,omitempty" writer:",right"`
	CanBeDownloaded    bool               `json:"can_be_downloaded"`
	State              string             `json:"state,omitempty" writer:",width:12"`
	Statistics         *ChapterStatistics `json:"statistics,omitempty" writer:"-"`
}

type ChapterStatistics struct {
	CharactersUnconverted int64 `json:"characters_unconverted"`
	CharactersConverted   int64 `json:"characters_converted"`
	ParagraphsConverted   int64 `json:"paragraphs_converted"`
	ParagraphsUnconverted int64 `json:"paragraphs_unconverted"`
}

// Snapshot is a converted rendition of a project or a chapter. Only one of
// ProjectSnapshotId and ChapterSnapshotId is set
type Snapshot struct {
	ProjectSnapshotId string `json:"project_snapshot_id,omitempty" writer:",width:22"`
	ChapterSnapshotId string `json:"chapter_snapshot_id,omitempty" writer:",width:22"`
	ProjectId         string `json:"project_id" writer:",width:22"`
	ChapterId         string `json:"chapter_id,omitempty" writer:",width:22"`
	CreatedAt         int64  `json:"created_at_unix" writer:",right"`
	Name              string `json:"name" writer:",width:30"`
}

// ProjectRequest is the multipart body for creating a project
type ProjectRequest struct {
	Name                    string `json:"name"`
	DefaultTitleVoiceId     string `json:"default_title_voice_id"`
	DefaultParagraphVoiceId string `json:"default_paragraph_voice_id"`
	DefaultModelId          string `json:"default_model_id"`
	PronunciationLocators   string `json:"pronunciation_dictionary_locators,omitempty"` // JSON array of PronunciationLocator
	FromUrl                 string `json:"from_url,omitempty"`
	QualityPreset           string `json:"quality_preset,omitempty"` // standard, high, highest, ultra
	Title                   string `json:"title,omitempty"`
	Author                  string `json:"author,omitempty"`
	IsbnNumber              string `json:"isbn_number,omitempty"`
	AcxVolumeNormalization  bool   `json:"acx_volume_normalization"`
}

type projectDocumentRequest struct {
	ProjectRequest
	Document multipart.File `json:"from_document"`
}

// PronunciationLocator references a version of a pronunciation dictionary
type PronunciationLocator struct {
	Id        string `json:"pronunciation_dictionary_id"`
	VersionId string `json:"version_id"`
}

/////////////////////////////////////////////////////////////////////////////////
// TYPES - RESPONSES

// Status is returned by edit, delete and convert operations
type Status struct {
	Status string `json:"status"`
}

type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

type projectsResponse struct {
	Projects []Project `json:"projects"`
}

type chaptersResponse struct {
	Chapters []Chapter `json:"chapters"`
}

type snapshotsResponse struct {
	Snapshots []Snapshot `json:"snapshots"`
}

type addVoiceResponse struct {
	Id string `json:"voice_id"`
}

type addProjectResponse struct {
	Project Project `json:"project"`
}

/////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (v Voice) String() string {
	return stringify(v)
}

func (v VoiceSettings) String() string {
	return stringify(v)
}

func (m Model) String() string {
	return stringify(m)
}

func (h HistoryItem) String() string {
	return stringify(h)
}

func (u User) String() string {
	return stringify(u)
}

func (s Subscription) String() string {
	return stringify(s)
}

func (p Project) String() string {
	return stringify(p)
}

func (c Chapter) String() string {
	return stringify(c)
}

func (s Snapshot) String() string {
	return stringify(s)
}

func (s Status) String() string {
	return stringify(s)
}

func stringify(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
