package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"teksher_backend/internal/model"
)

// ResetTokenGenerator 无状态的密码重置令牌：base36 时间戳 + HMAC。
// 密码或 last_login 变化后旧令牌自动失效
type ResetTokenGenerator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewResetTokenGenerator(secret string, ttl time.Duration) *ResetTokenGenerator {
	return &ResetTokenGenerator{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (g *ResetTokenGenerator) Make(user *model.User) string {
	ts := g.now().Unix()
	return strconv.FormatInt(ts, 36) + "-" + g.sign(user, ts)
}

func (g *ResetTokenGenerator) Check(user *model.User, token string) bool {
	if user == nil || token == "" {
		return false
	}
	tsPart, sig, ok := strings.Cut(token, "-")
	if !ok {
		return false
	}
	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}
	if !hmac.Equal([]byte(sig), []byte(g.sign(user, ts))) {
		return false
	}
	age := g.now().Sub(time.Unix(ts, 0))
	return age >= 0 && age <= g.ttl
}

func (g *ResetTokenGenerator) sign(user *model.User, ts int64) string {
	lastLogin := ""
	if user.LastLogin != nil {
		lastLogin = user.LastLogin.UTC().Format(time.RFC3339Nano)
	}
	mac := hmac.New(sha256.New, g.secret)
	fmt.Fprintf(mac, "%d|%s|%s|%d", user.ID, user.Password, lastLogin, ts)
	return hex.EncodeToString(mac.Sum(nil))
}

// EncodeUID 用户 id 的 URL 安全 base64 编码
func EncodeUID(id uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10)))
}

func DecodeUID(uid string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("invalid uid")
	}
	return uint(id), nil
}
