// Package authz 把散落在各端点的角色/归属判断收拢成一组纯谓词。
// 所有判断显式接收 Actor，不读任何全局状态；Actor 为 nil 表示匿名请求，
// 一律按无权限处理。
package authz

import "Saut_Review/internal/model"

// Actor 当前请求人，由认证中间件从 token claims 还原
type Actor struct {
	ID   uint64
	Role model.Role
}

// Privileged 学者或管理员
func (a *Actor) Privileged() bool {
	if a == nil {
		return false
	}
	return a.Role == model.RoleScholar || a.Role == model.RoleAdmin
}

func (a *Actor) Admin() bool {
	return a != nil && a.Role == model.RoleAdmin
}

// Owned 资源的归属关系。ok=false 表示无归属（如匿名捐赠），
// 和任何用户都不相等。
type Owned interface {
	OwnedBy() (id uint64, ok bool)
}

// Authored 学者批注的作者关系，与 Owned 刻意分开：点评"关于"一个
// 用户的诵读，但"出自"另一个学者，混用会让任一方能改另一方的内容。
type Authored interface {
	AuthoredBy() (id uint64, ok bool)
}

func Owns(a *Actor, r Owned) bool {
	if a == nil || r == nil {
		return false
	}
	id, ok := r.OwnedBy()
	return ok && id == a.ID
}

func AuthorOf(a *Actor, r Authored) bool {
	if a == nil || r == nil {
		return false
	}
	id, ok := r.AuthoredBy()
	return ok && id == a.ID
}

// CanRead 归属者或特权角色可读
func CanRead(a *Actor, r Owned) bool {
	return Owns(a, r) || a.Privileged()
}

// CanEdit 作者或平台管理员可改/删
func CanEdit(a *Actor, r Authored) bool {
	return AuthorOf(a, r) || a.Admin()
}
