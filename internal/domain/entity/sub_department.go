package entity

// SubDepartment subdepartamento, hijo directo de un Department.
//
// ParentDepartmentID/ParentDepartmentName los estampa el join por padre antes
// de mezclar los resultados: quien consume la colección plana necesita poder
// mostrar "subdepartamento → departamento" sin volver a consultar.
type SubDepartment struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Department EntityRef `json:"department"`
	Active     bool      `json:"active"`

	ParentDepartmentID   int64  `json:"parentDepartmentId"`
	ParentDepartmentName string `json:"parentDepartmentName"`
}
