package domain

// ItemRole is the side an item belongs to. It determines which provider
// index the item is written to and which index is searched on its behalf.
type ItemRole string

const (
	ItemRoleLost  ItemRole = "lost"
	ItemRoleFound ItemRole = "found"
)

func (r ItemRole) String() string { return string(r) }

func (r ItemRole) IsValid() bool {
	switch r {
	case ItemRoleLost, ItemRoleFound:
		return true
	}
	return false
}

// Opposite returns the other role. Cross-role matching searches the
// opposite index: a lost item searches the found index and vice versa.
func (r ItemRole) Opposite() ItemRole {
	if r == ItemRoleLost {
		return ItemRoleFound
	}
	return ItemRoleLost
}

// ItemStatus represents the lifecycle state of an item.
type ItemStatus string

const (
	ItemStatusOpen     ItemStatus = "open"
	ItemStatusMatched  ItemStatus = "matched"
	ItemStatusResolved ItemStatus = "resolved"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusOpen, ItemStatusMatched, ItemStatusResolved:
		return true
	}
	return false
}

// MatchStatus represents the review state of a match.
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusConfirmed MatchStatus = "confirmed"
	MatchStatusRejected  MatchStatus = "rejected"
)

func (s MatchStatus) String() string { return string(s) }

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusConfirmed, MatchStatusRejected:
		return true
	}
	return false
}

// NotificationKind identifies what triggered a notification.
type NotificationKind string

const (
	NotificationKindMatchFound             NotificationKind = "match_found"
	NotificationKindContactRequest         NotificationKind = "contact_request"
	NotificationKindContactRequestResolved NotificationKind = "contact_request_resolved"
)

func (k NotificationKind) String() string { return string(k) }

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationKindMatchFound, NotificationKindContactRequest, NotificationKindContactRequestResolved:
		return true
	}
	return false
}

// ContactRequestStatus represents the state of a contact request.
type ContactRequestStatus string

const (
	ContactRequestStatusPending  ContactRequestStatus = "pending"
	ContactRequestStatusApproved ContactRequestStatus = "approved"
	ContactRequestStatusDenied   ContactRequestStatus = "denied"
)

func (s ContactRequestStatus) String() string { return string(s) }

func (s ContactRequestStatus) IsValid() bool {
	switch s {
	case ContactRequestStatusPending, ContactRequestStatusApproved, ContactRequestStatusDenied:
		return true
	}
	return false
}

// IsResolved reports whether the request has been approved or denied.
func (s ContactRequestStatus) IsResolved() bool {
	return s == ContactRequestStatusApproved || s == ContactRequestStatusDenied
}
