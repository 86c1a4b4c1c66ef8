package model

// ContractSummary gathers everything the PDF summary renders: the contract
// header, the two parties and the obligation list.
type ContractSummary struct {
	Contract    Contract
	Supplier    Supplier
	OrgUnit     OrgUnit
	Obligations []Obligation
}
