package models

// NoticeLevel classifies a [Notice].
type NoticeLevel int

const (
	// NoticeError reports a failed operation.
	NoticeError NoticeLevel = iota + 1
	// NoticeSuccess reports a completed operation that has no other visible
	// effect (e.g. a pass phrase change).
	NoticeSuccess
)

// String returns a short label for the level.
func (l NoticeLevel) String() string {
	switch l {
	case NoticeError:
		return "error"
	case NoticeSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Notice is a piece of operator feedback produced by an operation. It is the
// typed replacement for blocking alert dialogs: callers decide how to render
// it.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// ErrorNotice builds a [NoticeError] notice.
func ErrorNotice(text string) Notice {
	return Notice{Level: NoticeError, Text: text}
}

// SuccessNotice builds a [NoticeSuccess] notice.
func SuccessNotice(text string) Notice {
	return Notice{Level: NoticeSuccess, Text: text}
}
