package util

import (
	"strings"
)

// ValidateTeacherEmail 校验邮箱域名与校方域名完全一致（大小写敏感，子域名拒绝）
func ValidateTeacherEmail(email, domain string) bool {
	local, emailDomain, found := strings.Cut(email, "@")
	if !found || local == "" {
		return false
	}
	return emailDomain == domain
}

// EmailHandle 返回邮箱 @ 前的本地部分，作为教师 handle
func EmailHandle(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
