package optivus

import (
	"context"

	"github.com/optivus-protocol/portal/pkg/model"
)

// DashboardStats fetches the member's referral summary.
func (c *Client) DashboardStats(ctx context.Context, token string) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.get(ctx, "/dashboard/stats/", token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TeamTree fetches the member's referral downline as a list of top-level
// (directly referred) members with nested children.
func (c *Client) TeamTree(ctx context.Context, token string) ([]model.TeamMember, error) {
	var tree []model.TeamMember
	if err := c.get(ctx, "/dashboard/team/", token, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
