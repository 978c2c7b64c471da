package domain

// UserState represents the chat's current interaction state.
type UserState string

const (
	StateIdle                  UserState = "idle"
	StateWaitingWord           UserState = "waiting_word"
	StateWaitingTranslation    UserState = "waiting_translation"
	StateWaitingPartOfSpeech   UserState = "waiting_part_of_speech"
	StateWaitingSearch         UserState = "waiting_search"
	StateWaitingDelete         UserState = "waiting_delete"
	StateWaitingEditWord       UserState = "waiting_edit_word"
	StateWaitingEditTranslate  UserState = "waiting_edit_translation"
	StateWaitingEditPartSpeech UserState = "waiting_edit_part_of_speech"
)

// StateData holds temporary data collected while a multi-step flow runs.
type StateData struct {
	State          UserState
	CurrentWord    string
	Translation    string
	HasTranslation bool
}
