package domain

var Tables = []interface{}{
	&Customer{},
	&Service{},
	&SparePart{},
	&ServiceSparePart{},
}
