package model

type Country struct {
	ID   int64
	Name string
}
