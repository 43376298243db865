package constants

// Role names yang dipakai di token & guard.
const (
	RoleOwner       = "owner"        // super-admin lintas sekolah
	RoleSchoolAdmin = "school_admin" // admin satu sekolah (tenant)
)
