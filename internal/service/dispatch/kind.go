package dispatch

import "github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"

type Kind int

const (
	KindUnknown Kind = iota
	KindReminder
	KindLoveMessage
	KindCoupleActivity
)

func (k Kind) String() string {
	switch k {
	case KindReminder:
		return domain.KindValueReminder
	case KindLoveMessage:
		return domain.KindValueLoveMessage
	case KindCoupleActivity:
		return domain.KindValueCoupleActivity
	default:
		return "unknown"
	}
}

// ParseKind maps any unrecognised value, including the empty string, to
// KindUnknown.
func ParseKind(s string) Kind {
	switch s {
	case domain.KindValueReminder:
		return KindReminder
	case domain.KindValueLoveMessage:
		return KindLoveMessage
	case domain.KindValueCoupleActivity:
		return KindCoupleActivity
	default:
		return KindUnknown
	}
}
