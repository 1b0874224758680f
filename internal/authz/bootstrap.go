package authz

import "fmt"

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "readonly_auditor",
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
			},
		},
		{
			// 菜单运营：套餐、加购项、优惠券
			Role:     "menu_operations",
			Inherits: []string{"readonly_auditor"},
			Policies: []Policy{
				{Object: "/admin/packages", Action: "*"},
				{Object: "/admin/packages/:id", Action: "*"},
				{Object: "/admin/addons", Action: "*"},
				{Object: "/admin/addons/:id", Action: "*"},
				{Object: "/admin/coupons", Action: "*"},
				{Object: "/admin/coupons/:id", Action: "*"},
			},
		},
		{
			// 配送调度：订阅审核、配送单、配送员、分组
			Role:     "dispatch",
			Inherits: []string{"readonly_auditor"},
			Policies: []Policy{
				{Object: "/admin/subscriptions", Action: "GET"},
				{Object: "/admin/subscriptions/:id", Action: "GET"},
				{Object: "/admin/subscriptions/:id/approve", Action: "POST"},
				{Object: "/admin/subscriptions/:id/reject", Action: "POST"},
				{Object: "/admin/deliveries", Action: "*"},
				{Object: "/admin/deliveries/:id", Action: "*"},
				{Object: "/admin/deliveries/:id/assign", Action: "POST"},
				{Object: "/admin/deliveries/:id/unassign", Action: "POST"},
				{Object: "/admin/deliveries/:id/status", Action: "PATCH"},
				{Object: "/admin/deliveries/sync", Action: "POST"},
				{Object: "/admin/couriers", Action: "*"},
				{Object: "/admin/couriers/:id", Action: "*"},
				{Object: "/admin/delivery-groups", Action: "*"},
				{Object: "/admin/delivery-groups/:id", Action: "*"},
			},
		},
		{
			// 财务：钱包与流水
			Role:     "finance",
			Inherits: []string{"readonly_auditor"},
			Policies: []Policy{
				{Object: "/admin/wallets/:user_id", Action: "GET"},
				{Object: "/admin/wallets/:user_id/adjust", Action: "POST"},
				{Object: "/admin/wallet-transactions", Action: "GET"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
