package identity

import "github.com/cloudshim/awslite/internal/awsjson"

// IdentityPool describes a Cognito identity pool as returned by
// DescribeIdentityPool and accepted by UpdateIdentityPool.
type IdentityPool struct {
	IdentityPoolId                 *string           `json:"IdentityPoolId,omitempty"`
	IdentityPoolName               *string           `json:"IdentityPoolName,omitempty"`
	AllowUnauthenticatedIdentities bool              `json:"AllowUnauthenticatedIdentities"`
	AllowClassicFlow               *bool             `json:"AllowClassicFlow,omitempty"`
	SupportedLoginProviders        map[string]string `json:"SupportedLoginProviders,omitempty"`
	DeveloperProviderName          *string           `json:"DeveloperProviderName,omitempty"`
	OpenIdConnectProviderARNs      []string          `json:"OpenIdConnectProviderARNs,omitempty"`
	CognitoIdentityProviders       []Provider        `json:"CognitoIdentityProviders,omitempty"`
	SamlProviderARNs               []string          `json:"SamlProviderARNs,omitempty"`
	IdentityPoolTags               map[string]string `json:"IdentityPoolTags,omitempty"`
}

// Provider is a Cognito user pool acting as an identity provider.
type Provider struct {
	ProviderName         *string `json:"ProviderName,omitempty"`
	ClientId             *string `json:"ClientId,omitempty"`
	ServerSideTokenCheck *bool   `json:"ServerSideTokenCheck,omitempty"`
}

// PoolSummary is the short form returned by ListIdentityPools.
type PoolSummary struct {
	IdentityPoolId   *string `json:"IdentityPoolId,omitempty"`
	IdentityPoolName *string `json:"IdentityPoolName,omitempty"`
}

// IdentityDescription is one identity within a pool.
type IdentityDescription struct {
	IdentityId       *string       `json:"IdentityId,omitempty"`
	Logins           []string      `json:"Logins,omitempty"`
	CreationDate     *awsjson.Time `json:"CreationDate,omitempty"`
	LastModifiedDate *awsjson.Time `json:"LastModifiedDate,omitempty"`
}

// Credentials are the temporary AWS credentials vended for an identity.
type Credentials struct {
	AccessKeyId  *string       `json:"AccessKeyId,omitempty"`
	SecretKey    *string       `json:"SecretKey,omitempty"`
	SessionToken *string       `json:"SessionToken,omitempty"`
	Expiration   *awsjson.Time `json:"Expiration,omitempty"`
}

type CreateIdentityPoolInput struct {
	IdentityPoolName               *string           `json:"IdentityPoolName"`
	AllowUnauthenticatedIdentities bool              `json:"AllowUnauthenticatedIdentities"`
	AllowClassicFlow               *bool             `json:"AllowClassicFlow,omitempty"`
	SupportedLoginProviders        map[string]string `json:"SupportedLoginProviders,omitempty"`
	DeveloperProviderName          *string           `json:"DeveloperProviderName,omitempty"`
	OpenIdConnectProviderARNs      []string          `json:"OpenIdConnectProviderARNs,omitempty"`
	CognitoIdentityProviders       []Provider        `json:"CognitoIdentityProviders,omitempty"`
	SamlProviderARNs               []string          `json:"SamlProviderARNs,omitempty"`
	IdentityPoolTags               map[string]string `json:"IdentityPoolTags,omitempty"`
}

type DescribeIdentityPoolInput struct {
	IdentityPoolId *string `json:"IdentityPoolId"`
}

type DeleteIdentityPoolInput struct {
	IdentityPoolId *string `json:"IdentityPoolId"`
}

type ListIdentityPoolsInput struct {
	MaxResults int32   `json:"MaxResults"`
	NextToken  *string `json:"NextToken,omitempty"`
}

type ListIdentityPoolsOutput struct {
	IdentityPools []PoolSummary `json:"IdentityPools,omitempty"`
	NextToken     *string       `json:"NextToken,omitempty"`
}

type ListIdentitiesInput struct {
	IdentityPoolId *string `json:"IdentityPoolId"`
	MaxResults     int32   `json:"MaxResults"`
	NextToken      *string `json:"NextToken,omitempty"`
	HideDisabled   *bool   `json:"HideDisabled,omitempty"`
}

type ListIdentitiesOutput struct {
	IdentityPoolId *string               `json:"IdentityPoolId,omitempty"`
	Identities     []IdentityDescription `json:"Identities,omitempty"`
	NextToken      *string               `json:"NextToken,omitempty"`
}

type GetIdInput struct {
	IdentityPoolId *string           `json:"IdentityPoolId"`
	AccountId      *string           `json:"AccountId,omitempty"`
	Logins         map[string]string `json:"Logins,omitempty"`
}

type GetIdOutput struct {
	IdentityId *string `json:"IdentityId,omitempty"`
}

type GetOpenIdTokenInput struct {
	IdentityId *string           `json:"IdentityId"`
	Logins     map[string]string `json:"Logins,omitempty"`
}

type GetOpenIdTokenOutput struct {
	IdentityId *string `json:"IdentityId,omitempty"`
	Token      *string `json:"Token,omitempty"`
}

type GetCredentialsForIdentityInput struct {
	IdentityId    *string           `json:"IdentityId"`
	Logins        map[string]string `json:"Logins,omitempty"`
	CustomRoleArn *string           `json:"CustomRoleArn,omitempty"`
}

type GetCredentialsForIdentityOutput struct {
	IdentityId  *string      `json:"IdentityId,omitempty"`
	Credentials *Credentials `json:"Credentials,omitempty"`
}

type TagResourceInput struct {
	ResourceArn *string           `json:"ResourceArn"`
	Tags        map[string]string `json:"Tags"`
}

type UntagResourceInput struct {
	ResourceArn *string  `json:"ResourceArn"`
	TagKeys     []string `json:"TagKeys"`
}

type ListTagsForResourceInput struct {
	ResourceArn *string `json:"ResourceArn"`
}

type ListTagsForResourceOutput struct {
	Tags map[string]string `json:"Tags,omitempty"`
}
