package sagemaker

import "github.com/cloudshim/awslite/internal/awsjson"

// Training job states.
const (
	TrainingJobStatusInProgress = "InProgress"
	TrainingJobStatusCompleted  = "Completed"
	TrainingJobStatusFailed     = "Failed"
	TrainingJobStatusStopping   = "Stopping"
	TrainingJobStatusStopped    = "Stopped"
)

// Endpoint states.
const (
	EndpointStatusOutOfService   = "OutOfService"
	EndpointStatusCreating       = "Creating"
	EndpointStatusUpdating       = "Updating"
	EndpointStatusSystemUpdating = "SystemUpdating"
	EndpointStatusRollingBack    = "RollingBack"
	EndpointStatusInService      = "InService"
	EndpointStatusDeleting       = "Deleting"
	EndpointStatusFailed         = "Failed"
)

type Tag struct {
	Key   *string `json:"Key"`
	Value *string `json:"Value"`
}

type AlgorithmSpecification struct {
	TrainingImage     *string `json:"TrainingImage,omitempty"`
	AlgorithmName     *string `json:"AlgorithmName,omitempty"`
	TrainingInputMode *string `json:"TrainingInputMode,omitempty"`
}

type S3DataSource struct {
	S3DataType             *string `json:"S3DataType"`
	S3Uri                  *string `json:"S3Uri"`
	S3DataDistributionType *string `json:"S3DataDistributionType,omitempty"`
}

type DataSource struct {
	S3DataSource *S3DataSource `json:"S3DataSource,omitempty"`
}

type Channel struct {
	ChannelName     *string     `json:"ChannelName"`
	DataSource      *DataSource `json:"DataSource"`
	ContentType     *string     `json:"ContentType,omitempty"`
	CompressionType *string     `json:"CompressionType,omitempty"`
}

type OutputDataConfig struct {
	S3OutputPath *string `json:"S3OutputPath"`
	KmsKeyId     *string `json:"KmsKeyId,omitempty"`
}

type ResourceConfig struct {
	InstanceType   *string `json:"InstanceType"`
	InstanceCount  int32   `json:"InstanceCount"`
	VolumeSizeInGB int32   `json:"VolumeSizeInGB"`
}

type StoppingCondition struct {
	MaxRuntimeInSeconds  int32  `json:"MaxRuntimeInSeconds,omitempty"`
	MaxWaitTimeInSeconds *int32 `json:"MaxWaitTimeInSeconds,omitempty"`
}

type ModelArtifacts struct {
	S3ModelArtifacts *string `json:"S3ModelArtifacts,omitempty"`
}

type CreateTrainingJobInput struct {
	TrainingJobName        *string                 `json:"TrainingJobName"`
	AlgorithmSpecification *AlgorithmSpecification `json:"AlgorithmSpecification"`
	RoleArn                *string                 `json:"RoleArn"`
	InputDataConfig        []Channel               `json:"InputDataConfig,omitempty"`
	OutputDataConfig       *OutputDataConfig       `json:"OutputDataConfig"`
	ResourceConfig         *ResourceConfig         `json:"ResourceConfig"`
	StoppingCondition      *StoppingCondition      `json:"StoppingCondition"`
	HyperParameters        map[string]string       `json:"HyperParameters,omitempty"`
	Tags                   []Tag                   `json:"Tags,omitempty"`
}

type CreateTrainingJobOutput struct {
	TrainingJobArn *string `json:"TrainingJobArn,omitempty"`
}

type DescribeTrainingJobInput struct {
	TrainingJobName *string `json:"TrainingJobName"`
}

type DescribeTrainingJobOutput struct {
	TrainingJobName        *string                 `json:"TrainingJobName,omitempty"`
	TrainingJobArn         *string                 `json:"TrainingJobArn,omitempty"`
	TrainingJobStatus      *string                 `json:"TrainingJobStatus,omitempty"`
	SecondaryStatus        *string                 `json:"SecondaryStatus,omitempty"`
	FailureReason          *string                 `json:"FailureReason,omitempty"`
	AlgorithmSpecification *AlgorithmSpecification `json:"AlgorithmSpecification,omitempty"`
	ResourceConfig         *ResourceConfig         `json:"ResourceConfig,omitempty"`
	StoppingCondition      *StoppingCondition      `json:"StoppingCondition,omitempty"`
	HyperParameters        map[string]string       `json:"HyperParameters,omitempty"`
	ModelArtifacts         *ModelArtifacts         `json:"ModelArtifacts,omitempty"`
	RoleArn                *string                 `json:"RoleArn,omitempty"`
	CreationTime           *awsjson.Time           `json:"CreationTime,omitempty"`
	TrainingStartTime      *awsjson.Time           `json:"TrainingStartTime,omitempty"`
	TrainingEndTime        *awsjson.Time           `json:"TrainingEndTime,omitempty"`
	LastModifiedTime       *awsjson.Time           `json:"LastModifiedTime,omitempty"`
}

type StopTrainingJobInput struct {
	TrainingJobName *string `json:"TrainingJobName"`
}

type TrainingJobSummary struct {
	TrainingJobName   *string       `json:"TrainingJobName,omitempty"`
	TrainingJobArn    *string       `json:"TrainingJobArn,omitempty"`
	TrainingJobStatus *string       `json:"TrainingJobStatus,omitempty"`
	CreationTime      *awsjson.Time `json:"CreationTime,omitempty"`
	TrainingEndTime   *awsjson.Time `json:"TrainingEndTime,omitempty"`
	LastModifiedTime  *awsjson.Time `json:"LastModifiedTime,omitempty"`
}

type ListTrainingJobsInput struct {
	NextToken          *string       `json:"NextToken,omitempty"`
	MaxResults         *int32        `json:"MaxResults,omitempty"`
	NameContains       *string       `json:"NameContains,omitempty"`
	StatusEquals       *string       `json:"StatusEquals,omitempty"`
	SortBy             *string       `json:"SortBy,omitempty"`
	SortOrder          *string       `json:"SortOrder,omitempty"`
	CreationTimeAfter  *awsjson.Time `json:"CreationTimeAfter,omitempty"`
	CreationTimeBefore *awsjson.Time `json:"CreationTimeBefore,omitempty"`
}

type ListTrainingJobsOutput struct {
	TrainingJobSummaries []TrainingJobSummary `json:"TrainingJobSummaries,omitempty"`
	NextToken            *string              `json:"NextToken,omitempty"`
}

type ProductionVariant struct {
	VariantName          *string  `json:"VariantName"`
	ModelName            *string  `json:"ModelName"`
	InstanceType         *string  `json:"InstanceType,omitempty"`
	InitialInstanceCount *int32   `json:"InitialInstanceCount,omitempty"`
	InitialVariantWeight *float64 `json:"InitialVariantWeight,omitempty"`
}

type ProductionVariantSummary struct {
	VariantName          *string  `json:"VariantName,omitempty"`
	CurrentWeight        *float64 `json:"CurrentWeight,omitempty"`
	DesiredWeight        *float64 `json:"DesiredWeight,omitempty"`
	CurrentInstanceCount *int32   `json:"CurrentInstanceCount,omitempty"`
	DesiredInstanceCount *int32   `json:"DesiredInstanceCount,omitempty"`
}

type CreateEndpointConfigInput struct {
	EndpointConfigName *string             `json:"EndpointConfigName"`
	ProductionVariants []ProductionVariant `json:"ProductionVariants"`
	KmsKeyId           *string             `json:"KmsKeyId,omitempty"`
	Tags               []Tag               `json:"Tags,omitempty"`
}

type CreateEndpointConfigOutput struct {
	EndpointConfigArn *string `json:"EndpointConfigArn,omitempty"`
}

type CreateEndpointInput struct {
	EndpointName       *string `json:"EndpointName"`
	EndpointConfigName *string `json:"EndpointConfigName"`
	Tags               []Tag   `json:"Tags,omitempty"`
}

type CreateEndpointOutput struct {
	EndpointArn *string `json:"EndpointArn,omitempty"`
}

type DescribeEndpointInput struct {
	EndpointName *string `json:"EndpointName"`
}

type DescribeEndpointOutput struct {
	EndpointName       *string                    `json:"EndpointName,omitempty"`
	EndpointArn        *string                    `json:"EndpointArn,omitempty"`
	EndpointConfigName *string                    `json:"EndpointConfigName,omitempty"`
	EndpointStatus     *string                    `json:"EndpointStatus,omitempty"`
	FailureReason      *string                    `json:"FailureReason,omitempty"`
	ProductionVariants []ProductionVariantSummary `json:"ProductionVariants,omitempty"`
	CreationTime       *awsjson.Time              `json:"CreationTime,omitempty"`
	LastModifiedTime   *awsjson.Time              `json:"LastModifiedTime,omitempty"`
}

type DeleteEndpointInput struct {
	EndpointName *string `json:"EndpointName"`
}

type EndpointSummary struct {
	EndpointName     *string       `json:"EndpointName,omitempty"`
	EndpointArn      *string       `json:"EndpointArn,omitempty"`
	EndpointStatus   *string       `json:"EndpointStatus,omitempty"`
	CreationTime     *awsjson.Time `json:"CreationTime,omitempty"`
	LastModifiedTime *awsjson.Time `json:"LastModifiedTime,omitempty"`
}

type ListEndpointsInput struct {
	NextToken    *string `json:"NextToken,omitempty"`
	MaxResults   *int32  `json:"MaxResults,omitempty"`
	NameContains *string `json:"NameContains,omitempty"`
	StatusEquals *string `json:"StatusEquals,omitempty"`
	SortBy       *string `json:"SortBy,omitempty"`
	SortOrder    *string `json:"SortOrder,omitempty"`
}

type ListEndpointsOutput struct {
	Endpoints []EndpointSummary `json:"Endpoints,omitempty"`
	NextToken *string           `json:"NextToken,omitempty"`
}

type AddTagsInput struct {
	ResourceArn *string `json:"ResourceArn"`
	Tags        []Tag   `json:"Tags"`
}

type AddTagsOutput struct {
	Tags []Tag `json:"Tags,omitempty"`
}

type DeleteTagsInput struct {
	ResourceArn *string  `json:"ResourceArn"`
	TagKeys     []string `json:"TagKeys"`
}

type ListTagsInput struct {
	ResourceArn *string `json:"ResourceArn"`
	NextToken   *string `json:"NextToken,omitempty"`
	MaxResults  *int32  `json:"MaxResults,omitempty"`
}

type ListTagsOutput struct {
	Tags      []Tag   `json:"Tags,omitempty"`
	NextToken *string `json:"NextToken,omitempty"`
}
