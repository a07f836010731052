package department

type Department struct {
	Code string
	Name string
}
