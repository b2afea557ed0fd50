package request

type Status string

// accepted and delivered exist in stored data only.
const (
	StatusRequested Status = "requested"
	StatusReserved  Status = "reserved"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
	StatusAccepted  Status = "accepted"
	StatusDelivered Status = "delivered"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusReserved, StatusFulfilled, StatusCancelled, StatusRejected,
		StatusAccepted, StatusDelivered:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return s == StatusRequested || s == StatusReserved
}

func (s Status) IsTerminal() bool {
	return s == StatusFulfilled || s == StatusCancelled || s == StatusRejected
}

// ContactVisible reports whether the donor has approved this request, which is
// when contact details are disclosed to the organization.
func (s Status) ContactVisible() bool {
	return s == StatusReserved || s == StatusFulfilled
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Tab string

const (
	TabAll       Tab = ""
	TabOngoing   Tab = "ongoing"
	TabCompleted Tab = "completed"
)

func (t Tab) Statuses() []Status {
	switch t {
	case TabOngoing:
		return []Status{StatusRequested, StatusReserved}
	case TabCompleted:
		return []Status{StatusFulfilled, StatusCancelled, StatusRejected}
	default:
		return nil
	}
}

func ParseTab(s string) (Tab, error) {
	t := Tab(s)
	switch t {
	case TabAll, TabOngoing, TabCompleted:
		return t, nil
	default:
		return "", ErrInvalidTab
	}
}

// ActiveStatuses are the statuses that count toward the one-open-request rule.
func ActiveStatuses() []Status {
	return []Status{StatusRequested, StatusReserved}
}
