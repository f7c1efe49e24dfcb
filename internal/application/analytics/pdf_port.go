package analytics

import "github.com/tu-usuario/registries-console/internal/application/dto"

// SnapshotPDFGenerator define el puerto de salida para la exportación
// imprimible del snapshot. La implementación concreta usa Maroto; para tests
// se puede inyectar un fake.
type SnapshotPDFGenerator interface {
	GenerateSnapshotPDF(snapshot *dto.DashboardSnapshotDTO) ([]byte, error)
}
