package password

import "github.com/alexedwards/argon2id"

// Hash 使用 argon2id 产生单向散列，每次调用使用新的随机盐
func Hash(plain string) (string, error) {
	return argon2id.CreateHash(plain, argon2id.DefaultParams)
}

// Verify 使用 digest 内嵌的盐重新计算并做定时安全比较；密码不符返回 false 而非错误
func Verify(plain string, digest string) (bool, error) {
	match, _, err := argon2id.CheckHash(plain, digest)
	if err != nil {
		return false, err
	}

	return match, nil
}
