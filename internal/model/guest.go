package model

// Guest is a lazily created identity keyed by normalized (lowercased)
// email.  No registration flow exists; the first booking for an unknown
// email creates the row and later bookings reuse it unchanged, so the
// name split and corporate data of the first booking win.
//
// Fields:
//  ID          – primary key identifier.
//  Code        – internal guest code (CORP.... or INDV....).
//  FirstName   – first word of the display name.
//  LastName    – remainder of the display name, may be empty.
//  Email       – unique, matched case-insensitively.
//  IsCorporate – whether the guest books under a corporate agreement.
//  CompanyName – company name, nil unless corporate.
type Guest struct {
	ID          uint64  // users.user_id
	Code        string  // users.user_code
	FirstName   string  // users.first_name
	LastName    string  // users.last_name
	Email       string  // users.email
	IsCorporate bool    // users.is_corporate
	CompanyName *string // users.company_name (nullable)
}
