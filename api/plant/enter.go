package plant

type Plant struct{}
