package meteorapools

import "fmt"

type PoolType uint8

const (
	PoolTypePermissioned PoolType = iota
	PoolTypePermissionless
)

func (PoolType) EnumVariants() uint8 { return 2 }

func (p PoolType) String() string {
	switch p {
	case PoolTypePermissioned:
		return "Permissioned"
	case PoolTypePermissionless:
		return "Permissionless"
	}
	return fmt.Sprintf("PoolType(%d)", uint8(p))
}

func (p PoolType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
