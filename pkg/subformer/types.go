package subformer

import (
	"encoding/json"
	"fmt"

	"github.com/subformer/subformer-go/pkg/jsontime"
)

// ================== Enumerations ==================

// JobState represents the execution state of a job.
type JobState string

const (
	JobStateQueued    JobState = "queued"
	JobStateActive    JobState = "active"
	JobStateCompleted JobState = "completed"
	JobStateFailed    JobState = "failed"
	JobStateCancelled JobState = "cancelled"
)

// UnmarshalJSON implements json.Unmarshaler. Unknown states are rejected
// rather than silently carried through.
func (s *JobState) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch JobState(v) {
	case JobStateQueued, JobStateActive, JobStateCompleted, JobStateFailed, JobStateCancelled:
		*s = JobState(v)
		return nil
	}
	return fmt.Errorf("unknown job state %q", v)
}

// JobType represents the type of a background job.
type JobType string

const (
	JobTypeVideoDubbing    JobType = "video-dubbing"
	JobTypeVoiceCloning    JobType = "voice-cloning"
	JobTypeVoiceSynthesis  JobType = "voice-synthesis"
	JobTypeDubStudioRender JobType = "dub-studio-render-video"
)

// UnmarshalJSON implements json.Unmarshaler. Unknown job types are rejected.
func (t *JobType) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch JobType(v) {
	case JobTypeVideoDubbing, JobTypeVoiceCloning, JobTypeVoiceSynthesis, JobTypeDubStudioRender:
		*t = JobType(v)
		return nil
	}
	return fmt.Errorf("unknown job type %q", v)
}

// DubSource is the source platform of a dubbing job. Raw strings are
// accepted wherever a DubSource is expected; the server validates them.
type DubSource string

const (
	DubSourceYouTube   DubSource = "youtube"
	DubSourceTikTok    DubSource = "tiktok"
	DubSourceInstagram DubSource = "instagram"
	DubSourceFacebook  DubSource = "facebook"
	DubSourceX         DubSource = "x"
	DubSourceURL       DubSource = "url"
)

// Language is a BCP 47 style language code supported for dubbing. The set
// below mirrors the service's published list; raw codes are accepted too,
// and Dubbing.Languages returns the authoritative list.
type Language string

const (
	LanguageAfrikaans          Language = "af-ZA"
	LanguageArabic             Language = "ar-SA"
	LanguageAzerbaijani        Language = "az-AZ"
	LanguageBelarusian         Language = "be-BY"
	LanguageBulgarian          Language = "bg-BG"
	LanguageBengali            Language = "bn-IN"
	LanguageBosnian            Language = "bs-BA"
	LanguageCatalan            Language = "ca-ES"
	LanguageCzech              Language = "cs-CZ"
	LanguageWelsh              Language = "cy-GB"
	LanguageDanish             Language = "da-DK"
	LanguageGerman             Language = "de-DE"
	LanguageGreek              Language = "el-GR"
	LanguageEnglish            Language = "en-US"
	LanguageSpanish            Language = "es-ES"
	LanguageEstonian           Language = "et-EE"
	LanguagePersian            Language = "fa-IR"
	LanguageFinnish            Language = "fi-FI"
	LanguageFilipino           Language = "fil-PH"
	LanguageFrench             Language = "fr-FR"
	LanguageGalician           Language = "gl-ES"
	LanguageGujarati           Language = "gu-IN"
	LanguageHebrew             Language = "he-IL"
	LanguageHindi              Language = "hi-IN"
	LanguageCroatian           Language = "hr-HR"
	LanguageHungarian          Language = "hu-HU"
	LanguageArmenian           Language = "hy-AM"
	LanguageIndonesian         Language = "id-ID"
	LanguageIcelandic          Language = "is-IS"
	LanguageItalian            Language = "it-IT"
	LanguageJapanese           Language = "ja-JP"
	LanguageJavanese           Language = "jv-ID"
	LanguageGeorgian           Language = "ka-GE"
	LanguageKazakh             Language = "kk-KZ"
	LanguageKhmer              Language = "km-KH"
	LanguageKannada            Language = "kn-IN"
	LanguageKorean             Language = "ko-KR"
	LanguageLatin              Language = "la-VA"
	LanguageLithuanian         Language = "lt-LT"
	LanguageLatvian            Language = "lv-LV"
	LanguageMacedonian         Language = "mk-MK"
	LanguageMalayalam          Language = "ml-IN"
	LanguageMongolian          Language = "mn-MN"
	LanguageMarathi            Language = "mr-IN"
	LanguageMalay              Language = "ms-MY"
	LanguageMaltese            Language = "mt-MT"
	LanguageBurmese            Language = "my-MM"
	LanguageDutch              Language = "nl-NL"
	LanguageNorwegian          Language = "no-NO"
	LanguagePunjabi            Language = "pa-IN"
	LanguagePolish             Language = "pl-PL"
	LanguagePortuguese         Language = "pt-BR"
	LanguageRomanian           Language = "ro-RO"
	LanguageRussian            Language = "ru-RU"
	LanguageSlovak             Language = "sk-SK"
	LanguageSlovenian          Language = "sl-SI"
	LanguageAlbanian           Language = "sq-AL"
	LanguageSerbian            Language = "sr-RS"
	LanguageSwedish            Language = "sv-SE"
	LanguageSwahili            Language = "sw-KE"
	LanguageTamil              Language = "ta-IN"
	LanguageTelugu             Language = "te-IN"
	LanguageThai               Language = "th-TH"
	LanguageTagalog            Language = "tl-PH"
	LanguageTurkish            Language = "tr-TR"
	LanguageUkrainian          Language = "uk-UA"
	LanguageUrdu               Language = "ur-PK"
	LanguageUzbek              Language = "uz-UZ"
	LanguageVietnamese         Language = "vi-VN"
	LanguageChineseSimplified  Language = "zh-CN"
	LanguageChineseTraditional Language = "zh-TW"
)

// Gender is the gender of a library voice.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// UnmarshalJSON implements json.Unmarshaler. Unknown genders are rejected.
func (g *Gender) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch Gender(v) {
	case GenderMale, GenderFemale:
		*g = Gender(v)
		return nil
	}
	return fmt.Errorf("unknown gender %q", v)
}

// ================== Jobs ==================

// JobProgress reports how far along a running job is.
type JobProgress struct {
	// Progress is the completion percentage, 0-100.
	Progress float64 `json:"progress"`

	// Message is the current status message, if any.
	Message string `json:"message,omitempty"`

	// Step is the current processing step label, if any.
	Step string `json:"step,omitempty"`
}

// JobMetadata describes the source material of a job.
type JobMetadata struct {
	Title            string  `json:"title,omitempty"`
	ThumbnailURL     string  `json:"thumbnailUrl,omitempty"`
	Duration         float64 `json:"duration,omitempty"`
	SourceURL        string  `json:"sourceUrl,omitempty"`
	SourceType       string  `json:"sourceType,omitempty"`
	OriginalLanguage string  `json:"originalLanguage,omitempty"`
}

// Job is a server-tracked unit of asynchronous work. Jobs are read-only
// snapshots; the client never mutates them.
type Job struct {
	ID     string   `json:"id"`
	Type   JobType  `json:"type"`
	UserID string   `json:"userId"`
	State  JobState `json:"state"`

	// Input and Output are opaque payloads whose shape depends on Type.
	Input  any `json:"input,omitempty"`
	Output any `json:"output,omitempty"`

	Metadata  *JobMetadata      `json:"metadata,omitempty"`
	CreatedAt jsontime.Flexible `json:"createdAt"`
	Progress  *JobProgress      `json:"progress,omitempty"`

	ProcessedOn *jsontime.Flexible `json:"processedOn,omitempty"`
	FinishedOn  *jsontime.Flexible `json:"finishedOn,omitempty"`

	// CreditUsed is the credit cost charged for the job, once known.
	CreditUsed *float64 `json:"creditUsed,omitempty"`
}

// IsComplete reports whether the job has reached a terminal state,
// successfully or not.
func (j *Job) IsComplete() bool {
	switch j.State {
	case JobStateCompleted, JobStateFailed, JobStateCancelled:
		return true
	}
	return false
}

// IsSuccessful reports whether the job completed successfully.
func (j *Job) IsSuccessful() bool {
	return j.State == JobStateCompleted
}

// PaginatedJobs is an offset/limit page of jobs plus the total count.
type PaginatedJobs struct {
	Data  []Job `json:"data"`
	Total int   `json:"total"`
}

// ================== Target voices ==================

// TargetVoice selects the voice identity a clone or synthesis job should
// produce: either a library preset or an uploaded reference sample. Exactly
// one variant is sent per request.
type TargetVoice interface {
	targetVoice()
}

// PresetVoice selects a preset voice from the voice library.
type PresetVoice struct {
	PresetVoiceID string
}

func (PresetVoice) targetVoice() {}

// MarshalJSON implements json.Marshaler.
func (v PresetVoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Mode          string `json:"mode"`
		PresetVoiceID string `json:"presetVoiceId"`
	}{
		Mode:          "preset",
		PresetVoiceID: v.PresetVoiceID,
	})
}

// UploadedVoice selects an uploaded reference audio sample.
type UploadedVoice struct {
	TargetAudioURL string
}

func (UploadedVoice) targetVoice() {}

// MarshalJSON implements json.Marshaler.
func (v UploadedVoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Mode           string `json:"mode"`
		TargetAudioURL string `json:"targetAudioUrl"`
	}{
		Mode:           "upload",
		TargetAudioURL: v.TargetAudioURL,
	})
}

// ================== Voice library ==================

// Voice is a saved voice in the user's voice library.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AudioURL string `json:"audioUrl"`
	Gender   Gender `json:"gender"`

	// Duration is the length of the audio sample in milliseconds.
	Duration float64 `json:"duration"`

	CreatedAt jsontime.Flexible `json:"createdAt"`
}

// UploadURL is a short-lived presigned upload URL pair. Expiry is enforced
// server-side; the client does not track it.
type UploadURL struct {
	// UploadURL is the presigned URL to PUT the file to.
	UploadURL string `json:"uploadUrl"`

	// FileURL is the URL the file will be served from after upload.
	FileURL string `json:"fileUrl"`

	// Key is the storage key of the uploaded object.
	Key string `json:"key"`
}

// ================== Billing ==================

// UsageData is the usage snapshot for the active subscription period.
type UsageData struct {
	UsedCredits float64           `json:"usedCredits"`
	PlanCredits float64           `json:"planCredits"`
	TotalEvents int               `json:"totalEvents"`
	CurrentPlan string            `json:"currentPlan"`
	PeriodStart jsontime.Flexible `json:"periodStart"`
	PeriodEnd   jsontime.Flexible `json:"periodEnd"`
}

// Usage is the current billing usage response.
type Usage struct {
	Type string    `json:"type"`
	Data UsageData `json:"data"`
}

// DailyUsage is one calendar day's job counts per job type. Buckets absent
// from the payload default to zero.
type DailyUsage struct {
	Date            string `json:"date"`
	VideoDubbing    int    `json:"video-dubbing"`
	VoiceCloning    int    `json:"voice-cloning"`
	VoiceSynthesis  int    `json:"voice-synthesis"`
	DubStudioRender int    `json:"dub-studio-render-video"`
}

// ================== Users ==================

// User is the authenticated user's profile.
type User struct {
	ID                      string `json:"id"`
	Name                    string `json:"name,omitempty"`
	Email                   string `json:"email"`
	EmailVerified           bool   `json:"emailVerified"`
	Image                   string `json:"image,omitempty"`
	PreferredTargetLanguage string `json:"preferredTargetLanguage,omitempty"`
}

// RateLimit is a point-in-time snapshot of the dubbing rate limit. It is
// not refreshed automatically.
type RateLimit struct {
	Remaining int    `json:"remaining"`
	Limit     int    `json:"limit"`
	Reset     int64  `json:"reset"`
	Bucket    string `json:"bucket"`
}
