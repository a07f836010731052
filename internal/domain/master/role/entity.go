package role

type Role struct {
	Code string
	Name string
}
