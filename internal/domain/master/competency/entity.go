package competency

type Competency struct {
	Code          string
	Name          string
	Description   string
	RequiredScore int
}
