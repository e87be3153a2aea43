package stores

// Store describes one physical store and the external artifacts tied to it.
type Store struct {
	// ID is the numeric store id used by the locations table.
	ID int
	// Code is the zero-padded store code the label API expects.
	Code string
	// Name is the human-readable store name, also used as the backup
	// directory name on the NAS.
	Name string
	// Recipient receives this store's reports.
	Recipient string
	// LabelFile is the price/quantity label export on the FTP server.
	LabelFile string
	// SnapshotFile is the picker inventory snapshot on the FTP server.
	SnapshotFile string
}

// Registry returns the stores in processing order. Outside production,
// fallbackRecipient replaces every store recipient so test runs never mail
// store contacts.
func Registry(production bool, fallbackRecipient string) []Store {
	list := []Store{
		{
			ID:           1,
			Code:         "0001",
			Name:         "northgate",
			Recipient:    "inventory.northgate@partsdepot.example",
			LabelFile:    "PRICELABELNORTHGATE.csv",
			SnapshotFile: "PICKERNORTHGATE.csv",
		},
		{
			ID:           2,
			Code:         "0002",
			Name:         "southridge",
			Recipient:    "inventory.southridge@partsdepot.example",
			LabelFile:    "PRICELABELSOUTHRIDGE.csv",
			SnapshotFile: "PICKERSOUTHRIDGE.csv",
		},
		{
			ID:           3,
			Code:         "0003",
			Name:         "eastview",
			Recipient:    "inventory.eastview@partsdepot.example",
			LabelFile:    "PRICELABELEASTVIEW.csv",
			SnapshotFile: "PICKEREASTVIEW.csv",
		},
	}

	if !production && fallbackRecipient != "" {
		for i := range list {
			list[i].Recipient = fallbackRecipient
		}
	}
	return list
}
