package cli

import "fmt"

type unknownColumnError struct {
	name string
}

func (e unknownColumnError) Error() string {
	return fmt.Sprintf("unknown sort column: %s (want name|venue|tag|year|link|none)", e.name)
}

type unknownDirectionError struct {
	name string
}

func (e unknownDirectionError) Error() string {
	return fmt.Sprintf("unknown sort direction: %s (want asc|desc)", e.name)
}
