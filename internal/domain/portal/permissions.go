package portal

const (
	PermProfileRead        = "profile:read"
	PermProfileWrite       = "profile:write"
	PermSchemeWrite        = "scheme:write"
	PermSchemeDelete       = "scheme:delete"
	PermAnnouncementWrite  = "announcement:write"
	PermAnnouncementDelete = "announcement:delete"
	PermApplicationSubmit  = "application:submit"
	PermApplicationRead    = "application:read"
	PermApplicationReview  = "application:review"
	PermGrievanceSubmit    = "grievance:submit"
	PermGrievanceRead      = "grievance:read"
	PermGrievanceResolve   = "grievance:resolve"
	PermGrievanceAssign    = "grievance:assign"
	PermUserAdmin          = "user:admin"
	PermUserVerify         = "user:verify"
)

// allowedRoles is the full route permission table. Role sets are static data;
// handlers never test roles inline.
var allowedRoles = map[string][]Role{
	PermProfileRead:        {RoleCitizen, RoleStaff, RoleAdmin},
	PermProfileWrite:       {RoleCitizen, RoleStaff, RoleAdmin},
	PermSchemeWrite:        {RoleStaff, RoleAdmin},
	PermSchemeDelete:       {RoleAdmin},
	PermAnnouncementWrite:  {RoleStaff, RoleAdmin},
	PermAnnouncementDelete: {RoleAdmin},
	PermApplicationSubmit:  {RoleCitizen},
	PermApplicationRead:    {RoleCitizen, RoleStaff, RoleAdmin},
	PermApplicationReview:  {RoleStaff, RoleAdmin},
	PermGrievanceSubmit:    {RoleCitizen},
	PermGrievanceRead:      {RoleCitizen, RoleStaff, RoleAdmin},
	PermGrievanceResolve:   {RoleStaff, RoleAdmin},
	PermGrievanceAssign:    {RoleAdmin},
	PermUserAdmin:          {RoleAdmin},
	PermUserVerify:         {RoleStaff, RoleAdmin},
}

// AllowedRoles returns the role set permitted for a permission. Unknown
// permissions return an empty set, which denies everyone.
func AllowedRoles(permission string) []Role {
	return allowedRoles[permission]
}
