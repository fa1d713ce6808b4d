package model

// DashboardStats summarizes a member's referral performance.
type DashboardStats struct {
	TotalEarnings   float64 `json:"total_earnings"`
	TotalTeamSize   int     `json:"total_team_size"`
	DirectReferrals int     `json:"direct_referrals"`
}

// TeamMember is a node in the referral downline tree.
type TeamMember struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Username      string       `json:"username"`
	Level         int          `json:"level"`
	JoinDate      string       `json:"join_date"`
	EarningsFrom  float64      `json:"total_earnings_from"`
	Children      []TeamMember `json:"children"`
}

// CountDownline returns the total number of members in the subtree rooted at
// m, excluding m itself.
func (m *TeamMember) CountDownline() int {
	n := len(m.Children)
	for i := range m.Children {
		n += m.Children[i].CountDownline()
	}
	return n
}

// AdminStats are platform-wide aggregates for the admin overview.
type AdminStats struct {
	TotalUsers              int     `json:"total_users"`
	TotalReferralEarnings   float64 `json:"total_user_referral_earnings"`
	PendingWithdrawalsCount int     `json:"pending_withdrawals_count"`
	ProtocolBalance         float64 `json:"protocol_balance"`
}
