// Package session drives one player's run through the menus and the game.
package session

// Phase is a screen of the session.
type Phase int

const (
	MainMenu Phase = iota
	DifficultySelect
	CharacterSelect
	Settings
	HighScores
	Playing
	Paused
	GameOver
	NameEntry
	PostGame
	Closed
)

var phaseNames = [...]string{
	MainMenu:         "MainMenu",
	DifficultySelect: "DifficultySelect",
	CharacterSelect:  "CharacterSelect",
	Settings:         "Settings",
	HighScores:       "HighScores",
	Playing:          "Playing",
	Paused:           "Paused",
	GameOver:         "GameOver",
	NameEntry:        "NameEntry",
	PostGame:         "PostGame",
	Closed:           "Closed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// Menu reports whether the phase is a menu screen with the menu theme.
func (p Phase) Menu() bool {
	switch p {
	case Playing, Paused, Closed:
		return false
	default:
		return true
	}
}

// Event triggers a phase transition.
type Event int

const (
	Play Event = iota
	OpenSettings
	OpenScores
	Selected
	Back
	TogglePause
	Abandon
	LivesExhausted
	EnterName
	Skip
	Submit
	Retry
	ViewScores
	ToMenu
	AssetFailure
	Close
)

var eventNames = [...]string{
	Play:           "Play",
	OpenSettings:   "OpenSettings",
	OpenScores:     "OpenScores",
	Selected:       "Selected",
	Back:           "Back",
	TogglePause:    "TogglePause",
	Abandon:        "Abandon",
	LivesExhausted: "LivesExhausted",
	EnterName:      "EnterName",
	Skip:           "Skip",
	Submit:         "Submit",
	Retry:          "Retry",
	ViewScores:     "ViewScores",
	ToMenu:         "ToMenu",
	AssetFailure:   "AssetFailure",
	Close:          "Close",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[e]
}

type edge struct {
	from Phase
	on   Event
}

var transitions = map[edge]Phase{
	{MainMenu, Play}:         DifficultySelect,
	{MainMenu, OpenSettings}: Settings,
	{MainMenu, OpenScores}:   HighScores,

	{DifficultySelect, Selected}: CharacterSelect,
	{DifficultySelect, Back}:     MainMenu,

	{CharacterSelect, Selected}: Playing,
	{CharacterSelect, Back}:     DifficultySelect,

	{Settings, Back}:   MainMenu,
	{HighScores, Back}: MainMenu,

	{Playing, TogglePause}:    Paused,
	{Playing, LivesExhausted}: GameOver,
	{Playing, AssetFailure}:   MainMenu,

	{Paused, TogglePause}: Playing,
	{Paused, Abandon}:     MainMenu,

	{GameOver, EnterName}: NameEntry,
	{GameOver, Skip}:      PostGame,

	{NameEntry, Submit}: PostGame,
	{NameEntry, Skip}:   PostGame,

	{PostGame, Retry}:      Playing,
	{PostGame, ViewScores}: HighScores,
	{PostGame, ToMenu}:     MainMenu,
}

// Next returns the phase after e. Close always ends the session and
// undefined pairs leave the phase unchanged.
func Next(p Phase, e Event) Phase {
	if e == Close {
		return Closed
	}
	if next, ok := transitions[edge{p, e}]; ok {
		return next
	}
	return p
}
