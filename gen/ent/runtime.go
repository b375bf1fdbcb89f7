// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Zoli1212/awsflow/db/ent/schema"
	"github.com/Zoli1212/awsflow/gen/ent/billing"
	"github.com/Zoli1212/awsflow/gen/ent/history"
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/pricelist"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/tenantpricelist"
	"github.com/Zoli1212/awsflow/gen/ent/user"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billingFields := schema.Billing{}.Fields()
	_ = billingFields
	// billingDescTenantEmail is the schema descriptor for tenant_email field.
	billingDescTenantEmail := billingFields[1].Descriptor()
	// billing.TenantEmailValidator is a validator for the "tenant_email" field. It is called by the builders before save.
	billing.TenantEmailValidator = billingDescTenantEmail.Validators[0].(func(string) error)
	// billingDescTitle is the schema descriptor for title field.
	billingDescTitle := billingFields[2].Descriptor()
	// billing.DefaultTitle holds the default value on creation for the title field.
	billing.DefaultTitle = billingDescTitle.Default.(string)
	// billingDescAmount is the schema descriptor for amount field.
	billingDescAmount := billingFields[3].Descriptor()
	// billing.DefaultAmount holds the default value on creation for the amount field.
	billing.DefaultAmount = billingDescAmount.Default.(float64)
	// billingDescCreatedAt is the schema descriptor for created_at field.
	billingDescCreatedAt := billingFields[4].Descriptor()
	// billing.DefaultCreatedAt holds the default value on creation for the created_at field.
	billing.DefaultCreatedAt = billingDescCreatedAt.Default.(func() time.Time)
	// billingDescID is the schema descriptor for id field.
	billingDescID := billingFields[0].Descriptor()
	// billing.DefaultID holds the default value on creation for the id field.
	billing.DefaultID = billingDescID.Default.(func() uuid.UUID)
	historyFields := schema.History{}.Fields()
	_ = historyFields
	// historyDescUserEmail is the schema descriptor for user_email field.
	historyDescUserEmail := historyFields[1].Descriptor()
	// history.DefaultUserEmail holds the default value on creation for the user_email field.
	history.DefaultUserEmail = historyDescUserEmail.Default.(string)
	// historyDescTenantEmail is the schema descriptor for tenant_email field.
	historyDescTenantEmail := historyFields[2].Descriptor()
	// history.DefaultTenantEmail holds the default value on creation for the tenant_email field.
	history.DefaultTenantEmail = historyDescTenantEmail.Default.(string)
	// historyDescContent is the schema descriptor for content field.
	historyDescContent := historyFields[3].Descriptor()
	// history.DefaultContent holds the default value on creation for the content field.
	history.DefaultContent = historyDescContent.Default.(string)
	// historyDescCreatedAt is the schema descriptor for created_at field.
	historyDescCreatedAt := historyFields[7].Descriptor()
	// history.DefaultCreatedAt holds the default value on creation for the created_at field.
	history.DefaultCreatedAt = historyDescCreatedAt.Default.(func() time.Time)
	// historyDescID is the schema descriptor for id field.
	historyDescID := historyFields[0].Descriptor()
	// history.DefaultID holds the default value on creation for the id field.
	history.DefaultID = historyDescID.Default.(func() uuid.UUID)
	offerFields := schema.Offer{}.Fields()
	_ = offerFields
	// offerDescRecordID is the schema descriptor for record_id field.
	offerDescRecordID := offerFields[2].Descriptor()
	// offer.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	offer.RecordIDValidator = offerDescRecordID.Validators[0].(func(string) error)
	// offerDescTitle is the schema descriptor for title field.
	offerDescTitle := offerFields[3].Descriptor()
	// offer.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	offer.TitleValidator = offerDescTitle.Validators[0].(func(string) error)
	// offerDescStatus is the schema descriptor for status field.
	offerDescStatus := offerFields[4].Descriptor()
	// offer.DefaultStatus holds the default value on creation for the status field.
	offer.DefaultStatus = offerDescStatus.Default.(string)
	// offer.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	offer.StatusValidator = offerDescStatus.Validators[0].(func(string) error)
	// offerDescDescription is the schema descriptor for description field.
	offerDescDescription := offerFields[5].Descriptor()
	// offer.DefaultDescription holds the default value on creation for the description field.
	offer.DefaultDescription = offerDescDescription.Default.(string)
	// offerDescLocation is the schema descriptor for location field.
	offerDescLocation := offerFields[6].Descriptor()
	// offer.DefaultLocation holds the default value on creation for the location field.
	offer.DefaultLocation = offerDescLocation.Default.(string)
	// offerDescTotalPrice is the schema descriptor for total_price field.
	offerDescTotalPrice := offerFields[7].Descriptor()
	// offer.DefaultTotalPrice holds the default value on creation for the total_price field.
	offer.DefaultTotalPrice = offerDescTotalPrice.Default.(float64)
	// offerDescMaterialTotal is the schema descriptor for material_total field.
	offerDescMaterialTotal := offerFields[8].Descriptor()
	// offer.DefaultMaterialTotal holds the default value on creation for the material_total field.
	offer.DefaultMaterialTotal = offerDescMaterialTotal.Default.(float64)
	// offerDescWorkTotal is the schema descriptor for work_total field.
	offerDescWorkTotal := offerFields[9].Descriptor()
	// offer.DefaultWorkTotal holds the default value on creation for the work_total field.
	offer.DefaultWorkTotal = offerDescWorkTotal.Default.(float64)
	// offerDescEstimatedDuration is the schema descriptor for estimated_duration field.
	offerDescEstimatedDuration := offerFields[13].Descriptor()
	// offer.DefaultEstimatedDuration holds the default value on creation for the estimated_duration field.
	offer.DefaultEstimatedDuration = offerDescEstimatedDuration.Default.(string)
	// offerDescIsConvertedFromExisting is the schema descriptor for is_converted_from_existing field.
	offerDescIsConvertedFromExisting := offerFields[15].Descriptor()
	// offer.DefaultIsConvertedFromExisting holds the default value on creation for the is_converted_from_existing field.
	offer.DefaultIsConvertedFromExisting = offerDescIsConvertedFromExisting.Default.(bool)
	// offerDescTenantEmail is the schema descriptor for tenant_email field.
	offerDescTenantEmail := offerFields[16].Descriptor()
	// offer.TenantEmailValidator is a validator for the "tenant_email" field. It is called by the builders before save.
	offer.TenantEmailValidator = offerDescTenantEmail.Validators[0].(func(string) error)
	// offerDescCreatedAt is the schema descriptor for created_at field.
	offerDescCreatedAt := offerFields[17].Descriptor()
	// offer.DefaultCreatedAt holds the default value on creation for the created_at field.
	offer.DefaultCreatedAt = offerDescCreatedAt.Default.(func() time.Time)
	// offerDescUpdatedAt is the schema descriptor for updated_at field.
	offerDescUpdatedAt := offerFields[18].Descriptor()
	// offer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	offer.DefaultUpdatedAt = offerDescUpdatedAt.Default.(func() time.Time)
	// offer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	offer.UpdateDefaultUpdatedAt = offerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// offerDescID is the schema descriptor for id field.
	offerDescID := offerFields[0].Descriptor()
	// offer.DefaultID holds the default value on creation for the id field.
	offer.DefaultID = offerDescID.Default.(func() uuid.UUID)
	pricelistFields := schema.PriceList{}.Fields()
	_ = pricelistFields
	// pricelistDescCategory is the schema descriptor for category field.
	pricelistDescCategory := pricelistFields[1].Descriptor()
	// pricelist.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	pricelist.CategoryValidator = pricelistDescCategory.Validators[0].(func(string) error)
	// pricelistDescTask is the schema descriptor for task field.
	pricelistDescTask := pricelistFields[2].Descriptor()
	// pricelist.TaskValidator is a validator for the "task" field. It is called by the builders before save.
	pricelist.TaskValidator = pricelistDescTask.Validators[0].(func(string) error)
	// pricelistDescUnit is the schema descriptor for unit field.
	pricelistDescUnit := pricelistFields[3].Descriptor()
	// pricelist.DefaultUnit holds the default value on creation for the unit field.
	pricelist.DefaultUnit = pricelistDescUnit.Default.(string)
	// pricelistDescLaborCost is the schema descriptor for labor_cost field.
	pricelistDescLaborCost := pricelistFields[4].Descriptor()
	// pricelist.DefaultLaborCost holds the default value on creation for the labor_cost field.
	pricelist.DefaultLaborCost = pricelistDescLaborCost.Default.(float64)
	// pricelistDescMaterialCost is the schema descriptor for material_cost field.
	pricelistDescMaterialCost := pricelistFields[5].Descriptor()
	// pricelist.DefaultMaterialCost holds the default value on creation for the material_cost field.
	pricelist.DefaultMaterialCost = pricelistDescMaterialCost.Default.(float64)
	// pricelistDescCreatedAt is the schema descriptor for created_at field.
	pricelistDescCreatedAt := pricelistFields[6].Descriptor()
	// pricelist.DefaultCreatedAt holds the default value on creation for the created_at field.
	pricelist.DefaultCreatedAt = pricelistDescCreatedAt.Default.(func() time.Time)
	// pricelistDescUpdatedAt is the schema descriptor for updated_at field.
	pricelistDescUpdatedAt := pricelistFields[7].Descriptor()
	// pricelist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pricelist.DefaultUpdatedAt = pricelistDescUpdatedAt.Default.(func() time.Time)
	// pricelist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pricelist.UpdateDefaultUpdatedAt = pricelistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pricelistDescID is the schema descriptor for id field.
	pricelistDescID := pricelistFields[0].Descriptor()
	// pricelist.DefaultID holds the default value on creation for the id field.
	pricelist.DefaultID = pricelistDescID.Default.(func() uuid.UUID)
	requirementFields := schema.Requirement{}.Fields()
	_ = requirementFields
	// requirementDescTitle is the schema descriptor for title field.
	requirementDescTitle := requirementFields[2].Descriptor()
	// requirement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	requirement.TitleValidator = requirementDescTitle.Validators[0].(func(string) error)
	// requirementDescDescription is the schema descriptor for description field.
	requirementDescDescription := requirementFields[3].Descriptor()
	// requirement.DefaultDescription holds the default value on creation for the description field.
	requirement.DefaultDescription = requirementDescDescription.Default.(string)
	// requirementDescVersionNumber is the schema descriptor for version_number field.
	requirementDescVersionNumber := requirementFields[4].Descriptor()
	// requirement.DefaultVersionNumber holds the default value on creation for the version_number field.
	requirement.DefaultVersionNumber = requirementDescVersionNumber.Default.(int)
	// requirementDescUpdateCount is the schema descriptor for update_count field.
	requirementDescUpdateCount := requirementFields[5].Descriptor()
	// requirement.DefaultUpdateCount holds the default value on creation for the update_count field.
	requirement.DefaultUpdateCount = requirementDescUpdateCount.Default.(int)
	// requirementDescQuestionCount is the schema descriptor for question_count field.
	requirementDescQuestionCount := requirementFields[6].Descriptor()
	// requirement.DefaultQuestionCount holds the default value on creation for the question_count field.
	requirement.DefaultQuestionCount = requirementDescQuestionCount.Default.(int)
	// requirementDescCreatedAt is the schema descriptor for created_at field.
	requirementDescCreatedAt := requirementFields[7].Descriptor()
	// requirement.DefaultCreatedAt holds the default value on creation for the created_at field.
	requirement.DefaultCreatedAt = requirementDescCreatedAt.Default.(func() time.Time)
	// requirementDescUpdatedAt is the schema descriptor for updated_at field.
	requirementDescUpdatedAt := requirementFields[8].Descriptor()
	// requirement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	requirement.DefaultUpdatedAt = requirementDescUpdatedAt.Default.(func() time.Time)
	// requirement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	requirement.UpdateDefaultUpdatedAt = requirementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requirementDescID is the schema descriptor for id field.
	requirementDescID := requirementFields[0].Descriptor()
	// requirement.DefaultID holds the default value on creation for the id field.
	requirement.DefaultID = requirementDescID.Default.(func() uuid.UUID)
	tenantpricelistFields := schema.TenantPriceList{}.Fields()
	_ = tenantpricelistFields
	// tenantpricelistDescTenantEmail is the schema descriptor for tenant_email field.
	tenantpricelistDescTenantEmail := tenantpricelistFields[1].Descriptor()
	// tenantpricelist.TenantEmailValidator is a validator for the "tenant_email" field. It is called by the builders before save.
	tenantpricelist.TenantEmailValidator = tenantpricelistDescTenantEmail.Validators[0].(func(string) error)
	// tenantpricelistDescCategory is the schema descriptor for category field.
	tenantpricelistDescCategory := tenantpricelistFields[2].Descriptor()
	// tenantpricelist.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	tenantpricelist.CategoryValidator = tenantpricelistDescCategory.Validators[0].(func(string) error)
	// tenantpricelistDescTask is the schema descriptor for task field.
	tenantpricelistDescTask := tenantpricelistFields[3].Descriptor()
	// tenantpricelist.TaskValidator is a validator for the "task" field. It is called by the builders before save.
	tenantpricelist.TaskValidator = tenantpricelistDescTask.Validators[0].(func(string) error)
	// tenantpricelistDescUnit is the schema descriptor for unit field.
	tenantpricelistDescUnit := tenantpricelistFields[4].Descriptor()
	// tenantpricelist.DefaultUnit holds the default value on creation for the unit field.
	tenantpricelist.DefaultUnit = tenantpricelistDescUnit.Default.(string)
	// tenantpricelistDescLaborCost is the schema descriptor for labor_cost field.
	tenantpricelistDescLaborCost := tenantpricelistFields[5].Descriptor()
	// tenantpricelist.DefaultLaborCost holds the default value on creation for the labor_cost field.
	tenantpricelist.DefaultLaborCost = tenantpricelistDescLaborCost.Default.(float64)
	// tenantpricelistDescMaterialCost is the schema descriptor for material_cost field.
	tenantpricelistDescMaterialCost := tenantpricelistFields[6].Descriptor()
	// tenantpricelist.DefaultMaterialCost holds the default value on creation for the material_cost field.
	tenantpricelist.DefaultMaterialCost = tenantpricelistDescMaterialCost.Default.(float64)
	// tenantpricelistDescCreatedAt is the schema descriptor for created_at field.
	tenantpricelistDescCreatedAt := tenantpricelistFields[7].Descriptor()
	// tenantpricelist.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenantpricelist.DefaultCreatedAt = tenantpricelistDescCreatedAt.Default.(func() time.Time)
	// tenantpricelistDescUpdatedAt is the schema descriptor for updated_at field.
	tenantpricelistDescUpdatedAt := tenantpricelistFields[8].Descriptor()
	// tenantpricelist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantpricelist.DefaultUpdatedAt = tenantpricelistDescUpdatedAt.Default.(func() time.Time)
	// tenantpricelist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantpricelist.UpdateDefaultUpdatedAt = tenantpricelistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tenantpricelistDescID is the schema descriptor for id field.
	tenantpricelistDescID := tenantpricelistFields[0].Descriptor()
	// tenantpricelist.DefaultID holds the default value on creation for the id field.
	tenantpricelist.DefaultID = tenantpricelistDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// userDescIsSuperUser is the schema descriptor for is_super_user field.
	userDescIsSuperUser := userFields[4].Descriptor()
	// user.DefaultIsSuperUser holds the default value on creation for the is_super_user field.
	user.DefaultIsSuperUser = userDescIsSuperUser.Default.(bool)
	// userDescIsTenant is the schema descriptor for is_tenant field.
	userDescIsTenant := userFields[5].Descriptor()
	// user.DefaultIsTenant holds the default value on creation for the is_tenant field.
	user.DefaultIsTenant = userDescIsTenant.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	workFields := schema.Work{}.Fields()
	_ = workFields
	// workDescTitle is the schema descriptor for title field.
	workDescTitle := workFields[1].Descriptor()
	// work.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	work.TitleValidator = workDescTitle.Validators[0].(func(string) error)
	// workDescLocation is the schema descriptor for location field.
	workDescLocation := workFields[2].Descriptor()
	// work.DefaultLocation holds the default value on creation for the location field.
	work.DefaultLocation = workDescLocation.Default.(string)
	// workDescCustomerName is the schema descriptor for customer_name field.
	workDescCustomerName := workFields[3].Descriptor()
	// work.DefaultCustomerName holds the default value on creation for the customer_name field.
	work.DefaultCustomerName = workDescCustomerName.Default.(string)
	// workDescTime is the schema descriptor for time field.
	workDescTime := workFields[5].Descriptor()
	// work.DefaultTime holds the default value on creation for the time field.
	work.DefaultTime = workDescTime.Default.(string)
	// workDescTotalPrice is the schema descriptor for total_price field.
	workDescTotalPrice := workFields[6].Descriptor()
	// work.DefaultTotalPrice holds the default value on creation for the total_price field.
	work.DefaultTotalPrice = workDescTotalPrice.Default.(float64)
	// workDescTenantEmail is the schema descriptor for tenant_email field.
	workDescTenantEmail := workFields[7].Descriptor()
	// work.TenantEmailValidator is a validator for the "tenant_email" field. It is called by the builders before save.
	work.TenantEmailValidator = workDescTenantEmail.Validators[0].(func(string) error)
	// workDescCreatedAt is the schema descriptor for created_at field.
	workDescCreatedAt := workFields[8].Descriptor()
	// work.DefaultCreatedAt holds the default value on creation for the created_at field.
	work.DefaultCreatedAt = workDescCreatedAt.Default.(func() time.Time)
	// workDescUpdatedAt is the schema descriptor for updated_at field.
	workDescUpdatedAt := workFields[9].Descriptor()
	// work.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	work.DefaultUpdatedAt = workDescUpdatedAt.Default.(func() time.Time)
	// work.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	work.UpdateDefaultUpdatedAt = workDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workDescID is the schema descriptor for id field.
	workDescID := workFields[0].Descriptor()
	// work.DefaultID holds the default value on creation for the id field.
	work.DefaultID = workDescID.Default.(func() uuid.UUID)
}
