package domain

type ShipLicenseNumber struct {
	ShipID        int64   `db:"ship_id"`
	LicenseNumber *string `db:"license_number"`
}

type LicenseListRow struct {
	License
	FisherFirst *string `db:"fisher_first"`
	FisherLast  *string `db:"fisher_last"`
	ShipName    *string `db:"ship_name"`
}

type InspectionListRow struct {
	Inspection
	InspectorFirst *string `db:"inspector_first"`
	InspectorLast  *string `db:"inspector_last"`
	ShipName       *string `db:"ship_name"`
	LicenseNumber  *string `db:"license_number"`
}
