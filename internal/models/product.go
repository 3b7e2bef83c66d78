package models

// Product is one scale/balance record, keyed by a unique product name.
// ManualRef and CalibrationRef hold either a web URL or a file name under
// the manuals directory; both may be empty.
type Product struct {
	Serial         string `json:"serial"`
	ManualRef      string `json:"manual_ref"`
	CalibrationRef string `json:"calibration_ref"`
	Battery        string `json:"battery"`
	Info           string `json:"info"`
	ImageFilename  string `json:"image_filename"`
	Stock          int    `json:"stock" validate:"gte=0"`
}

// ProductUpdate is a partial update of a product record. Nil fields are
// left untouched, so an edit dialog can submit only what changed.
type ProductUpdate struct {
	Serial         *string
	ManualRef      *string
	CalibrationRef *string
	Battery        *string
	Info           *string
	ImageFilename  *string
	Stock          *int
}

// Apply merges the non-nil fields of upd into p.
func (upd ProductUpdate) Apply(p *Product) {
	if upd.Serial != nil {
		p.Serial = *upd.Serial
	}
	if upd.ManualRef != nil {
		p.ManualRef = *upd.ManualRef
	}
	if upd.CalibrationRef != nil {
		p.CalibrationRef = *upd.CalibrationRef
	}
	if upd.Battery != nil {
		p.Battery = *upd.Battery
	}
	if upd.Info != nil {
		p.Info = *upd.Info
	}
	if upd.ImageFilename != nil {
		p.ImageFilename = *upd.ImageFilename
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
}
