package intent

// Intent is the conversational purpose classified for one sentence
type Intent int

const (
	WelcomeFallback Intent = iota
	Greeting
	Farewell
	SongRequest
	Quote
	UnsatisfiedRequest
	SelfStateQuery
	UnsatisfiedQuestion
)

func (i Intent) String() string {
	switch i {
	case WelcomeFallback:
		return "WELCOME_FALLBACK"
	case Greeting:
		return "GREETING"
	case Farewell:
		return "FAREWELL"
	case SongRequest:
		return "SONG_REQUEST"
	case Quote:
		return "QUOTE"
	case UnsatisfiedRequest:
		return "UNSATISFIED_REQUEST"
	case SelfStateQuery:
		return "SELF_STATE_QUERY"
	case UnsatisfiedQuestion:
		return "UNSATISFIED_QUESTION"
	default:
		return "UNKNOWN"
	}
}

// Unsatisfied reports whether the ROOT matched a request or question
// category but the companion labels did not qualify
func (i Intent) Unsatisfied() bool {
	return i == UnsatisfiedRequest || i == UnsatisfiedQuestion
}

func (i Intent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
