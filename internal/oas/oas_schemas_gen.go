// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type APIKey struct {
	APIKey string
	Roles  []string
}

// GetAPIKey returns the value of APIKey.
func (s *APIKey) GetAPIKey() string {
	return s.APIKey
}

// GetRoles returns the value of Roles.
func (s *APIKey) GetRoles() []string {
	return s.Roles
}

// SetAPIKey sets the value of APIKey.
func (s *APIKey) SetAPIKey(val string) {
	s.APIKey = val
}

// SetRoles sets the value of Roles.
func (s *APIKey) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Kind    string    `json:"kind"`
	Field   OptString `json:"field"`
	// Zero-based index of the offending cart line.
	Line     OptInt  `json:"line"`
	GroupId  OptUUID `json:"groupId"`
	OptionId OptUUID `json:"optionId"`
}

// GetCode returns the value of Code.
func (s *Error) GetCode() int {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// GetKind returns the value of Kind.
func (s *Error) GetKind() string {
	return s.Kind
}

// GetField returns the value of Field.
func (s *Error) GetField() OptString {
	return s.Field
}

// GetLine returns the value of Line.
func (s *Error) GetLine() OptInt {
	return s.Line
}

// GetGroupId returns the value of GroupId.
func (s *Error) GetGroupId() OptUUID {
	return s.GroupId
}

// GetOptionId returns the value of OptionId.
func (s *Error) GetOptionId() OptUUID {
	return s.OptionId
}

// SetCode sets the value of Code.
func (s *Error) SetCode(val int) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// SetKind sets the value of Kind.
func (s *Error) SetKind(val string) {
	s.Kind = val
}

// SetField sets the value of Field.
func (s *Error) SetField(val OptString) {
	s.Field = val
}

// SetLine sets the value of Line.
func (s *Error) SetLine(val OptInt) {
	s.Line = val
}

// SetGroupId sets the value of GroupId.
func (s *Error) SetGroupId(val OptUUID) {
	s.GroupId = val
}

// SetOptionId sets the value of OptionId.
func (s *Error) SetOptionId(val OptUUID) {
	s.OptionId = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{
		Value: v,
		Set:   true,
	}
}

// OptBool is optional bool.
type OptBool struct {
	Value bool
	Set   bool
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	var v bool
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptPayment returns new OptPayment with value set to v.
func NewOptPayment(v Payment) OptPayment {
	return OptPayment{
		Value: v,
		Set:   true,
	}
}

// OptPayment is optional Payment.
type OptPayment struct {
	Value Payment
	Set   bool
}

// IsSet returns true if OptPayment was set.
func (o OptPayment) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptPayment) Reset() {
	var v Payment
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptPayment) SetTo(v Payment) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptPayment) Get() (v Payment, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptPayment) Or(d Payment) Payment {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptUUID returns new OptUUID with value set to v.
func NewOptUUID(v uuid.UUID) OptUUID {
	return OptUUID{
		Value: v,
		Set:   true,
	}
}

// OptUUID is optional uuid.UUID.
type OptUUID struct {
	Value uuid.UUID
	Set   bool
}

// IsSet returns true if OptUUID was set.
func (o OptUUID) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptUUID) Reset() {
	var v uuid.UUID
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptUUID) SetTo(v uuid.UUID) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptUUID) Get() (v uuid.UUID, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptUUID) Or(d uuid.UUID) uuid.UUID {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/OrderDetail
type OrderDetail struct {
	OrderId          uuid.UUID   `json:"orderId"`
	OrganizationId   uuid.UUID   `json:"organizationId"`
	LocationId       uuid.UUID   `json:"locationId"`
	ExternalOrderRef string      `json:"externalOrderRef"`
	Status           string      `json:"status"`
	Subtotal         float64     `json:"subtotal"`
	TaxTotal         float64     `json:"taxTotal"`
	Total            float64     `json:"total"`
	CreatedAt        time.Time   `json:"createdAt"`
	CompletedAt      OptDateTime `json:"completedAt"`
	Items            []OrderItem `json:"items"`
	Payments         []Payment   `json:"payments"`
}

// GetOrderId returns the value of OrderId.
func (s *OrderDetail) GetOrderId() uuid.UUID {
	return s.OrderId
}

// GetOrganizationId returns the value of OrganizationId.
func (s *OrderDetail) GetOrganizationId() uuid.UUID {
	return s.OrganizationId
}

// GetLocationId returns the value of LocationId.
func (s *OrderDetail) GetLocationId() uuid.UUID {
	return s.LocationId
}

// GetExternalOrderRef returns the value of ExternalOrderRef.
func (s *OrderDetail) GetExternalOrderRef() string {
	return s.ExternalOrderRef
}

// GetStatus returns the value of Status.
func (s *OrderDetail) GetStatus() string {
	return s.Status
}

// GetSubtotal returns the value of Subtotal.
func (s *OrderDetail) GetSubtotal() float64 {
	return s.Subtotal
}

// GetTaxTotal returns the value of TaxTotal.
func (s *OrderDetail) GetTaxTotal() float64 {
	return s.TaxTotal
}

// GetTotal returns the value of Total.
func (s *OrderDetail) GetTotal() float64 {
	return s.Total
}

// GetCreatedAt returns the value of CreatedAt.
func (s *OrderDetail) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetCompletedAt returns the value of CompletedAt.
func (s *OrderDetail) GetCompletedAt() OptDateTime {
	return s.CompletedAt
}

// GetItems returns the value of Items.
func (s *OrderDetail) GetItems() []OrderItem {
	return s.Items
}

// GetPayments returns the value of Payments.
func (s *OrderDetail) GetPayments() []Payment {
	return s.Payments
}

// SetOrderId sets the value of OrderId.
func (s *OrderDetail) SetOrderId(val uuid.UUID) {
	s.OrderId = val
}

// SetOrganizationId sets the value of OrganizationId.
func (s *OrderDetail) SetOrganizationId(val uuid.UUID) {
	s.OrganizationId = val
}

// SetLocationId sets the value of LocationId.
func (s *OrderDetail) SetLocationId(val uuid.UUID) {
	s.LocationId = val
}

// SetExternalOrderRef sets the value of ExternalOrderRef.
func (s *OrderDetail) SetExternalOrderRef(val string) {
	s.ExternalOrderRef = val
}

// SetStatus sets the value of Status.
func (s *OrderDetail) SetStatus(val string) {
	s.Status = val
}

// SetSubtotal sets the value of Subtotal.
func (s *OrderDetail) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetTaxTotal sets the value of TaxTotal.
func (s *OrderDetail) SetTaxTotal(val float64) {
	s.TaxTotal = val
}

// SetTotal sets the value of Total.
func (s *OrderDetail) SetTotal(val float64) {
	s.Total = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *OrderDetail) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetCompletedAt sets the value of CompletedAt.
func (s *OrderDetail) SetCompletedAt(val OptDateTime) {
	s.CompletedAt = val
}

// SetItems sets the value of Items.
func (s *OrderDetail) SetItems(val []OrderItem) {
	s.Items = val
}

// SetPayments sets the value of Payments.
func (s *OrderDetail) SetPayments(val []Payment) {
	s.Payments = val
}

// Ref: #/components/schemas/OrderItem
type OrderItem struct {
	OrderItemId       uuid.UUID        `json:"orderItemId"`
	ProductId         uuid.UUID        `json:"productId"`
	ProductName       string           `json:"productName"`
	Quantity          int              `json:"quantity"`
	BaseUnitPrice     float64          `json:"baseUnitPrice"`
	ModifierUnitTotal float64          `json:"modifierUnitTotal"`
	FinalUnitPrice    float64          `json:"finalUnitPrice"`
	LineTotal         float64          `json:"lineTotal"`
	SelectedOptions   []SelectedOption `json:"selectedOptions"`
}

// GetOrderItemId returns the value of OrderItemId.
func (s *OrderItem) GetOrderItemId() uuid.UUID {
	return s.OrderItemId
}

// GetProductId returns the value of ProductId.
func (s *OrderItem) GetProductId() uuid.UUID {
	return s.ProductId
}

// GetProductName returns the value of ProductName.
func (s *OrderItem) GetProductName() string {
	return s.ProductName
}

// GetQuantity returns the value of Quantity.
func (s *OrderItem) GetQuantity() int {
	return s.Quantity
}

// GetBaseUnitPrice returns the value of BaseUnitPrice.
func (s *OrderItem) GetBaseUnitPrice() float64 {
	return s.BaseUnitPrice
}

// GetModifierUnitTotal returns the value of ModifierUnitTotal.
func (s *OrderItem) GetModifierUnitTotal() float64 {
	return s.ModifierUnitTotal
}

// GetFinalUnitPrice returns the value of FinalUnitPrice.
func (s *OrderItem) GetFinalUnitPrice() float64 {
	return s.FinalUnitPrice
}

// GetLineTotal returns the value of LineTotal.
func (s *OrderItem) GetLineTotal() float64 {
	return s.LineTotal
}

// GetSelectedOptions returns the value of SelectedOptions.
func (s *OrderItem) GetSelectedOptions() []SelectedOption {
	return s.SelectedOptions
}

// SetOrderItemId sets the value of OrderItemId.
func (s *OrderItem) SetOrderItemId(val uuid.UUID) {
	s.OrderItemId = val
}

// SetProductId sets the value of ProductId.
func (s *OrderItem) SetProductId(val uuid.UUID) {
	s.ProductId = val
}

// SetProductName sets the value of ProductName.
func (s *OrderItem) SetProductName(val string) {
	s.ProductName = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetBaseUnitPrice sets the value of BaseUnitPrice.
func (s *OrderItem) SetBaseUnitPrice(val float64) {
	s.BaseUnitPrice = val
}

// SetModifierUnitTotal sets the value of ModifierUnitTotal.
func (s *OrderItem) SetModifierUnitTotal(val float64) {
	s.ModifierUnitTotal = val
}

// SetFinalUnitPrice sets the value of FinalUnitPrice.
func (s *OrderItem) SetFinalUnitPrice(val float64) {
	s.FinalUnitPrice = val
}

// SetLineTotal sets the value of LineTotal.
func (s *OrderItem) SetLineTotal(val float64) {
	s.LineTotal = val
}

// SetSelectedOptions sets the value of SelectedOptions.
func (s *OrderItem) SetSelectedOptions(val []SelectedOption) {
	s.SelectedOptions = val
}

// Ref: #/components/schemas/OrderLine
type OrderLine struct {
	ProductId         uuid.UUID   `json:"productId"`
	Quantity          OptInt      `json:"quantity"`
	SelectedOptionIds []uuid.UUID `json:"selectedOptionIds"`
}

// GetProductId returns the value of ProductId.
func (s *OrderLine) GetProductId() uuid.UUID {
	return s.ProductId
}

// GetQuantity returns the value of Quantity.
func (s *OrderLine) GetQuantity() OptInt {
	return s.Quantity
}

// GetSelectedOptionIds returns the value of SelectedOptionIds.
func (s *OrderLine) GetSelectedOptionIds() []uuid.UUID {
	return s.SelectedOptionIds
}

// SetProductId sets the value of ProductId.
func (s *OrderLine) SetProductId(val uuid.UUID) {
	s.ProductId = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderLine) SetQuantity(val OptInt) {
	s.Quantity = val
}

// SetSelectedOptionIds sets the value of SelectedOptionIds.
func (s *OrderLine) SetSelectedOptionIds(val []uuid.UUID) {
	s.SelectedOptionIds = val
}

// Ref: #/components/schemas/OrderPage
type OrderPage struct {
	OrganizationId uuid.UUID      `json:"organizationId"`
	LocationId     OptUUID        `json:"locationId"`
	Status         OptString      `json:"status"`
	From           OptDateTime    `json:"from"`
	To             OptDateTime    `json:"to"`
	Page           int            `json:"page"`
	PageSize       int            `json:"pageSize"`
	TotalCount     int            `json:"totalCount"`
	Items          []OrderSummary `json:"items"`
}

// GetOrganizationId returns the value of OrganizationId.
func (s *OrderPage) GetOrganizationId() uuid.UUID {
	return s.OrganizationId
}

// GetLocationId returns the value of LocationId.
func (s *OrderPage) GetLocationId() OptUUID {
	return s.LocationId
}

// GetStatus returns the value of Status.
func (s *OrderPage) GetStatus() OptString {
	return s.Status
}

// GetFrom returns the value of From.
func (s *OrderPage) GetFrom() OptDateTime {
	return s.From
}

// GetTo returns the value of To.
func (s *OrderPage) GetTo() OptDateTime {
	return s.To
}

// GetPage returns the value of Page.
func (s *OrderPage) GetPage() int {
	return s.Page
}

// GetPageSize returns the value of PageSize.
func (s *OrderPage) GetPageSize() int {
	return s.PageSize
}

// GetTotalCount returns the value of TotalCount.
func (s *OrderPage) GetTotalCount() int {
	return s.TotalCount
}

// GetItems returns the value of Items.
func (s *OrderPage) GetItems() []OrderSummary {
	return s.Items
}

// SetOrganizationId sets the value of OrganizationId.
func (s *OrderPage) SetOrganizationId(val uuid.UUID) {
	s.OrganizationId = val
}

// SetLocationId sets the value of LocationId.
func (s *OrderPage) SetLocationId(val OptUUID) {
	s.LocationId = val
}

// SetStatus sets the value of Status.
func (s *OrderPage) SetStatus(val OptString) {
	s.Status = val
}

// SetFrom sets the value of From.
func (s *OrderPage) SetFrom(val OptDateTime) {
	s.From = val
}

// SetTo sets the value of To.
func (s *OrderPage) SetTo(val OptDateTime) {
	s.To = val
}

// SetPage sets the value of Page.
func (s *OrderPage) SetPage(val int) {
	s.Page = val
}

// SetPageSize sets the value of PageSize.
func (s *OrderPage) SetPageSize(val int) {
	s.PageSize = val
}

// SetTotalCount sets the value of TotalCount.
func (s *OrderPage) SetTotalCount(val int) {
	s.TotalCount = val
}

// SetItems sets the value of Items.
func (s *OrderPage) SetItems(val []OrderSummary) {
	s.Items = val
}

// Ref: #/components/schemas/OrderSummary
type OrderSummary struct {
	OrderId          uuid.UUID   `json:"orderId"`
	LocationId       uuid.UUID   `json:"locationId"`
	LocationName     string      `json:"locationName"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	CompletedAt      OptDateTime `json:"completedAt"`
	Subtotal         float64     `json:"subtotal"`
	TaxTotal         float64     `json:"taxTotal"`
	Total            float64     `json:"total"`
	ExternalOrderRef string      `json:"externalOrderRef"`
	LatestPayment    OptPayment  `json:"latestPayment"`
}

// GetOrderId returns the value of OrderId.
func (s *OrderSummary) GetOrderId() uuid.UUID {
	return s.OrderId
}

// GetLocationId returns the value of LocationId.
func (s *OrderSummary) GetLocationId() uuid.UUID {
	return s.LocationId
}

// GetLocationName returns the value of LocationName.
func (s *OrderSummary) GetLocationName() string {
	return s.LocationName
}

// GetStatus returns the value of Status.
func (s *OrderSummary) GetStatus() string {
	return s.Status
}

// GetCreatedAt returns the value of CreatedAt.
func (s *OrderSummary) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetCompletedAt returns the value of CompletedAt.
func (s *OrderSummary) GetCompletedAt() OptDateTime {
	return s.CompletedAt
}

// GetSubtotal returns the value of Subtotal.
func (s *OrderSummary) GetSubtotal() float64 {
	return s.Subtotal
}

// GetTaxTotal returns the value of TaxTotal.
func (s *OrderSummary) GetTaxTotal() float64 {
	return s.TaxTotal
}

// GetTotal returns the value of Total.
func (s *OrderSummary) GetTotal() float64 {
	return s.Total
}

// GetExternalOrderRef returns the value of ExternalOrderRef.
func (s *OrderSummary) GetExternalOrderRef() string {
	return s.ExternalOrderRef
}

// GetLatestPayment returns the value of LatestPayment.
func (s *OrderSummary) GetLatestPayment() OptPayment {
	return s.LatestPayment
}

// SetOrderId sets the value of OrderId.
func (s *OrderSummary) SetOrderId(val uuid.UUID) {
	s.OrderId = val
}

// SetLocationId sets the value of LocationId.
func (s *OrderSummary) SetLocationId(val uuid.UUID) {
	s.LocationId = val
}

// SetLocationName sets the value of LocationName.
func (s *OrderSummary) SetLocationName(val string) {
	s.LocationName = val
}

// SetStatus sets the value of Status.
func (s *OrderSummary) SetStatus(val string) {
	s.Status = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *OrderSummary) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetCompletedAt sets the value of CompletedAt.
func (s *OrderSummary) SetCompletedAt(val OptDateTime) {
	s.CompletedAt = val
}

// SetSubtotal sets the value of Subtotal.
func (s *OrderSummary) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetTaxTotal sets the value of TaxTotal.
func (s *OrderSummary) SetTaxTotal(val float64) {
	s.TaxTotal = val
}

// SetTotal sets the value of Total.
func (s *OrderSummary) SetTotal(val float64) {
	s.Total = val
}

// SetExternalOrderRef sets the value of ExternalOrderRef.
func (s *OrderSummary) SetExternalOrderRef(val string) {
	s.ExternalOrderRef = val
}

// SetLatestPayment sets the value of LatestPayment.
func (s *OrderSummary) SetLatestPayment(val OptPayment) {
	s.LatestPayment = val
}

// Ref: #/components/schemas/Payment
type Payment struct {
	PaymentId              uuid.UUID   `json:"paymentId"`
	Method                 string      `json:"method"`
	Status                 string      `json:"status"`
	Amount                 float64     `json:"amount"`
	TerminalTransactionRef OptString   `json:"terminalTransactionRef"`
	ApprovalCode           OptString   `json:"approvalCode"`
	ResponseCode           OptString   `json:"responseCode"`
	CardBrand              OptString   `json:"cardBrand"`
	Last4                  OptString   `json:"last4"`
	CreatedAt              time.Time   `json:"createdAt"`
	CapturedAt             OptDateTime `json:"capturedAt"`
}

// GetPaymentId returns the value of PaymentId.
func (s *Payment) GetPaymentId() uuid.UUID {
	return s.PaymentId
}

// GetMethod returns the value of Method.
func (s *Payment) GetMethod() string {
	return s.Method
}

// GetStatus returns the value of Status.
func (s *Payment) GetStatus() string {
	return s.Status
}

// GetAmount returns the value of Amount.
func (s *Payment) GetAmount() float64 {
	return s.Amount
}

// GetTerminalTransactionRef returns the value of TerminalTransactionRef.
func (s *Payment) GetTerminalTransactionRef() OptString {
	return s.TerminalTransactionRef
}

// GetApprovalCode returns the value of ApprovalCode.
func (s *Payment) GetApprovalCode() OptString {
	return s.ApprovalCode
}

// GetResponseCode returns the value of ResponseCode.
func (s *Payment) GetResponseCode() OptString {
	return s.ResponseCode
}

// GetCardBrand returns the value of CardBrand.
func (s *Payment) GetCardBrand() OptString {
	return s.CardBrand
}

// GetLast4 returns the value of Last4.
func (s *Payment) GetLast4() OptString {
	return s.Last4
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Payment) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetCapturedAt returns the value of CapturedAt.
func (s *Payment) GetCapturedAt() OptDateTime {
	return s.CapturedAt
}

// SetPaymentId sets the value of PaymentId.
func (s *Payment) SetPaymentId(val uuid.UUID) {
	s.PaymentId = val
}

// SetMethod sets the value of Method.
func (s *Payment) SetMethod(val string) {
	s.Method = val
}

// SetStatus sets the value of Status.
func (s *Payment) SetStatus(val string) {
	s.Status = val
}

// SetAmount sets the value of Amount.
func (s *Payment) SetAmount(val float64) {
	s.Amount = val
}

// SetTerminalTransactionRef sets the value of TerminalTransactionRef.
func (s *Payment) SetTerminalTransactionRef(val OptString) {
	s.TerminalTransactionRef = val
}

// SetApprovalCode sets the value of ApprovalCode.
func (s *Payment) SetApprovalCode(val OptString) {
	s.ApprovalCode = val
}

// SetResponseCode sets the value of ResponseCode.
func (s *Payment) SetResponseCode(val OptString) {
	s.ResponseCode = val
}

// SetCardBrand sets the value of CardBrand.
func (s *Payment) SetCardBrand(val OptString) {
	s.CardBrand = val
}

// SetLast4 sets the value of Last4.
func (s *Payment) SetLast4(val OptString) {
	s.Last4 = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Payment) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetCapturedAt sets the value of CapturedAt.
func (s *Payment) SetCapturedAt(val OptDateTime) {
	s.CapturedAt = val
}

// Ref: #/components/schemas/SelectedOption
type SelectedOption struct {
	GroupId    uuid.UUID `json:"groupId"`
	GroupName  string    `json:"groupName"`
	OptionId   uuid.UUID `json:"optionId"`
	OptionName string    `json:"optionName"`
	PriceDelta float64   `json:"priceDelta"`
}

// GetGroupId returns the value of GroupId.
func (s *SelectedOption) GetGroupId() uuid.UUID {
	return s.GroupId
}

// GetGroupName returns the value of GroupName.
func (s *SelectedOption) GetGroupName() string {
	return s.GroupName
}

// GetOptionId returns the value of OptionId.
func (s *SelectedOption) GetOptionId() uuid.UUID {
	return s.OptionId
}

// GetOptionName returns the value of OptionName.
func (s *SelectedOption) GetOptionName() string {
	return s.OptionName
}

// GetPriceDelta returns the value of PriceDelta.
func (s *SelectedOption) GetPriceDelta() float64 {
	return s.PriceDelta
}

// SetGroupId sets the value of GroupId.
func (s *SelectedOption) SetGroupId(val uuid.UUID) {
	s.GroupId = val
}

// SetGroupName sets the value of GroupName.
func (s *SelectedOption) SetGroupName(val string) {
	s.GroupName = val
}

// SetOptionId sets the value of OptionId.
func (s *SelectedOption) SetOptionId(val uuid.UUID) {
	s.OptionId = val
}

// SetOptionName sets the value of OptionName.
func (s *SelectedOption) SetOptionName(val string) {
	s.OptionName = val
}

// SetPriceDelta sets the value of PriceDelta.
func (s *SelectedOption) SetPriceDelta(val float64) {
	s.PriceDelta = val
}

// Ref: #/components/schemas/SubmitOrderRequest
type SubmitOrderRequest struct {
	OrganizationId   uuid.UUID   `json:"organizationId"`
	LocationId       uuid.UUID   `json:"locationId"`
	ExternalOrderRef string      `json:"externalOrderRef"`
	TaxRate          float64     `json:"taxRate"`
	Lines            []OrderLine `json:"lines"`
}

// GetOrganizationId returns the value of OrganizationId.
func (s *SubmitOrderRequest) GetOrganizationId() uuid.UUID {
	return s.OrganizationId
}

// GetLocationId returns the value of LocationId.
func (s *SubmitOrderRequest) GetLocationId() uuid.UUID {
	return s.LocationId
}

// GetExternalOrderRef returns the value of ExternalOrderRef.
func (s *SubmitOrderRequest) GetExternalOrderRef() string {
	return s.ExternalOrderRef
}

// GetTaxRate returns the value of TaxRate.
func (s *SubmitOrderRequest) GetTaxRate() float64 {
	return s.TaxRate
}

// GetLines returns the value of Lines.
func (s *SubmitOrderRequest) GetLines() []OrderLine {
	return s.Lines
}

// SetOrganizationId sets the value of OrganizationId.
func (s *SubmitOrderRequest) SetOrganizationId(val uuid.UUID) {
	s.OrganizationId = val
}

// SetLocationId sets the value of LocationId.
func (s *SubmitOrderRequest) SetLocationId(val uuid.UUID) {
	s.LocationId = val
}

// SetExternalOrderRef sets the value of ExternalOrderRef.
func (s *SubmitOrderRequest) SetExternalOrderRef(val string) {
	s.ExternalOrderRef = val
}

// SetTaxRate sets the value of TaxRate.
func (s *SubmitOrderRequest) SetTaxRate(val float64) {
	s.TaxRate = val
}

// SetLines sets the value of Lines.
func (s *SubmitOrderRequest) SetLines(val []OrderLine) {
	s.Lines = val
}

// Ref: #/components/schemas/SubmitOrderResult
type SubmitOrderResult struct {
	OrderId       uuid.UUID `json:"orderId"`
	Status        string    `json:"status"`
	Subtotal      float64   `json:"subtotal"`
	TaxTotal      float64   `json:"taxTotal"`
	Total         float64   `json:"total"`
	PaymentId     uuid.UUID `json:"paymentId"`
	PaymentStatus string    `json:"paymentStatus"`
}

// GetOrderId returns the value of OrderId.
func (s *SubmitOrderResult) GetOrderId() uuid.UUID {
	return s.OrderId
}

// GetStatus returns the value of Status.
func (s *SubmitOrderResult) GetStatus() string {
	return s.Status
}

// GetSubtotal returns the value of Subtotal.
func (s *SubmitOrderResult) GetSubtotal() float64 {
	return s.Subtotal
}

// GetTaxTotal returns the value of TaxTotal.
func (s *SubmitOrderResult) GetTaxTotal() float64 {
	return s.TaxTotal
}

// GetTotal returns the value of Total.
func (s *SubmitOrderResult) GetTotal() float64 {
	return s.Total
}

// GetPaymentId returns the value of PaymentId.
func (s *SubmitOrderResult) GetPaymentId() uuid.UUID {
	return s.PaymentId
}

// GetPaymentStatus returns the value of PaymentStatus.
func (s *SubmitOrderResult) GetPaymentStatus() string {
	return s.PaymentStatus
}

// SetOrderId sets the value of OrderId.
func (s *SubmitOrderResult) SetOrderId(val uuid.UUID) {
	s.OrderId = val
}

// SetStatus sets the value of Status.
func (s *SubmitOrderResult) SetStatus(val string) {
	s.Status = val
}

// SetSubtotal sets the value of Subtotal.
func (s *SubmitOrderResult) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetTaxTotal sets the value of TaxTotal.
func (s *SubmitOrderResult) SetTaxTotal(val float64) {
	s.TaxTotal = val
}

// SetTotal sets the value of Total.
func (s *SubmitOrderResult) SetTotal(val float64) {
	s.Total = val
}

// SetPaymentId sets the value of PaymentId.
func (s *SubmitOrderResult) SetPaymentId(val uuid.UUID) {
	s.PaymentId = val
}

// SetPaymentStatus sets the value of PaymentStatus.
func (s *SubmitOrderResult) SetPaymentStatus(val string) {
	s.PaymentStatus = val
}

// SubmitOrderResultHeaders wraps SubmitOrderResult with response headers.
type SubmitOrderResultHeaders struct {
	IdempotentReplayed OptBool
	Response           SubmitOrderResult
}

// GetIdempotentReplayed returns the value of IdempotentReplayed.
func (s *SubmitOrderResultHeaders) GetIdempotentReplayed() OptBool {
	return s.IdempotentReplayed
}

// GetResponse returns the value of Response.
func (s *SubmitOrderResultHeaders) GetResponse() SubmitOrderResult {
	return s.Response
}

// SetIdempotentReplayed sets the value of IdempotentReplayed.
func (s *SubmitOrderResultHeaders) SetIdempotentReplayed(val OptBool) {
	s.IdempotentReplayed = val
}

// SetResponse sets the value of Response.
func (s *SubmitOrderResultHeaders) SetResponse(val SubmitOrderResult) {
	s.Response = val
}

// Ref: #/components/schemas/TerminalOutcome
type TerminalOutcome struct {
	PaymentId     uuid.UUID `json:"paymentId"`
	PaymentStatus string    `json:"paymentStatus"`
	OrderId       uuid.UUID `json:"orderId"`
	OrderStatus   string    `json:"orderStatus"`
	OrderTotal    float64   `json:"orderTotal"`
}

// GetPaymentId returns the value of PaymentId.
func (s *TerminalOutcome) GetPaymentId() uuid.UUID {
	return s.PaymentId
}

// GetPaymentStatus returns the value of PaymentStatus.
func (s *TerminalOutcome) GetPaymentStatus() string {
	return s.PaymentStatus
}

// GetOrderId returns the value of OrderId.
func (s *TerminalOutcome) GetOrderId() uuid.UUID {
	return s.OrderId
}

// GetOrderStatus returns the value of OrderStatus.
func (s *TerminalOutcome) GetOrderStatus() string {
	return s.OrderStatus
}

// GetOrderTotal returns the value of OrderTotal.
func (s *TerminalOutcome) GetOrderTotal() float64 {
	return s.OrderTotal
}

// SetPaymentId sets the value of PaymentId.
func (s *TerminalOutcome) SetPaymentId(val uuid.UUID) {
	s.PaymentId = val
}

// SetPaymentStatus sets the value of PaymentStatus.
func (s *TerminalOutcome) SetPaymentStatus(val string) {
	s.PaymentStatus = val
}

// SetOrderId sets the value of OrderId.
func (s *TerminalOutcome) SetOrderId(val uuid.UUID) {
	s.OrderId = val
}

// SetOrderStatus sets the value of OrderStatus.
func (s *TerminalOutcome) SetOrderStatus(val string) {
	s.OrderStatus = val
}

// SetOrderTotal sets the value of OrderTotal.
func (s *TerminalOutcome) SetOrderTotal(val float64) {
	s.OrderTotal = val
}

// Ref: #/components/schemas/TerminalResultRequest
type TerminalResultRequest struct {
	Status                 string    `json:"status"`
	TerminalTransactionRef OptString `json:"terminalTransactionRef"`
	ApprovalCode           OptString `json:"approvalCode"`
	ResponseCode           OptString `json:"responseCode"`
	CardBrand              OptString `json:"cardBrand"`
	Last4                  OptString `json:"last4"`
}

// GetStatus returns the value of Status.
func (s *TerminalResultRequest) GetStatus() string {
	return s.Status
}

// GetTerminalTransactionRef returns the value of TerminalTransactionRef.
func (s *TerminalResultRequest) GetTerminalTransactionRef() OptString {
	return s.TerminalTransactionRef
}

// GetApprovalCode returns the value of ApprovalCode.
func (s *TerminalResultRequest) GetApprovalCode() OptString {
	return s.ApprovalCode
}

// GetResponseCode returns the value of ResponseCode.
func (s *TerminalResultRequest) GetResponseCode() OptString {
	return s.ResponseCode
}

// GetCardBrand returns the value of CardBrand.
func (s *TerminalResultRequest) GetCardBrand() OptString {
	return s.CardBrand
}

// GetLast4 returns the value of Last4.
func (s *TerminalResultRequest) GetLast4() OptString {
	return s.Last4
}

// SetStatus sets the value of Status.
func (s *TerminalResultRequest) SetStatus(val string) {
	s.Status = val
}

// SetTerminalTransactionRef sets the value of TerminalTransactionRef.
func (s *TerminalResultRequest) SetTerminalTransactionRef(val OptString) {
	s.TerminalTransactionRef = val
}

// SetApprovalCode sets the value of ApprovalCode.
func (s *TerminalResultRequest) SetApprovalCode(val OptString) {
	s.ApprovalCode = val
}

// SetResponseCode sets the value of ResponseCode.
func (s *TerminalResultRequest) SetResponseCode(val OptString) {
	s.ResponseCode = val
}

// SetCardBrand sets the value of CardBrand.
func (s *TerminalResultRequest) SetCardBrand(val OptString) {
	s.CardBrand = val
}

// SetLast4 sets the value of Last4.
func (s *TerminalResultRequest) SetLast4(val OptString) {
	s.Last4 = val
}
