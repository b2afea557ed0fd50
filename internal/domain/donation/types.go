package donation

type Status string

// accepted, delivered, fulfilled and rejected are kept for stored rows only;
// no operation transitions a donation into them.
const (
	StatusAvailable Status = "available"
	StatusRequested Status = "requested"
	StatusReserved  Status = "reserved"
	StatusAccepted  Status = "accepted"
	StatusDelivered Status = "delivered"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
	StatusFulfilled Status = "fulfilled"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRequested, StatusReserved, StatusAccepted, StatusDelivered,
		StatusCompleted, StatusExpired, StatusCancelled, StatusFulfilled, StatusRejected:
		return true
	default:
		return false
	}
}

// IsOpen reports whether organizations can still discover the donation.
func (s Status) IsOpen() bool {
	return s == StatusAvailable || s == StatusRequested || s == StatusReserved
}

// IsClosed reports whether the donation no longer accepts requests.
func (s Status) IsClosed() bool {
	return s == StatusCompleted || s == StatusExpired || s == StatusCancelled
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnacks    MealType = "snacks"
	MealFruits    MealType = "fruits"
	MealOther     MealType = "other"
)

func (m MealType) String() string {
	return string(m)
}

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks, MealFruits, MealOther:
		return true
	default:
		return false
	}
}

func ParseMealType(s string) (MealType, error) {
	m := MealType(s)
	if !m.IsValid() {
		return "", ErrInvalidMealType
	}
	return m, nil
}

// Tab groups statuses the way the donor dashboard lists them.
type Tab string

const (
	TabAll       Tab = ""
	TabOngoing   Tab = "ongoing"
	TabCompleted Tab = "completed"
	TabExpired   Tab = "expired"
)

func (t Tab) Statuses() []Status {
	switch t {
	case TabOngoing:
		return []Status{StatusAvailable, StatusRequested, StatusReserved}
	case TabCompleted:
		return []Status{StatusCompleted, StatusCancelled, StatusRejected, StatusFulfilled}
	case TabExpired:
		return []Status{StatusExpired}
	default:
		return nil
	}
}

func ParseTab(s string) (Tab, error) {
	t := Tab(s)
	switch t {
	case TabAll, TabOngoing, TabCompleted, TabExpired:
		return t, nil
	default:
		return "", ErrInvalidTab
	}
}
