// Copyright 2025 The Kubegit Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DefaultTitle is the deploy key title used when the spec does not set one.
const DefaultTitle = "Kubernetes-managed deploy key"

// GitHubDeployKeySpec defines the desired state of GitHubDeployKey
type GitHubDeployKeySpec struct {
	// Repository is the GitHub repository the deploy key is registered with,
	// either in "owner/repo" form or as a full repository URL.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=3
	Repository string `json:"repository"`

	// Title is the human-readable label of the deploy key. The operator
	// prepends its managed prefix before registering the key with GitHub.
	// +kubebuilder:default="Kubernetes-managed deploy key"
	// +optional
	Title string `json:"title,omitempty"`

	// ReadOnly controls whether the deploy key grants read-only access.
	// +kubebuilder:default=true
	// +optional
	ReadOnly *bool `json:"readOnly,omitempty"`
}

// GitHubDeployKeyStatus defines the observed state of GitHubDeployKey
type GitHubDeployKeyStatus struct {
	// KeyID is the identifier of the deploy key on GitHub. Absent until the
	// key has been created, and cleared when the key is lost.
	// +optional
	KeyID *int64 `json:"keyId,omitempty"`

	// ObservedTitle is the spec title the last successful convergence used.
	// It lets the controller detect title changes without an event log.
	// +optional
	ObservedTitle string `json:"observedTitle,omitempty"`

	// ObservedReadOnly is the readOnly flag the last successful convergence used.
	// +optional
	ObservedReadOnly *bool `json:"observedReadOnly,omitempty"`

	// ObservedGeneration is the generation last processed by the controller
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions represent the latest available observations of the deploy key's state
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=ghdk;deploykey;deploykeys
// +kubebuilder:printcolumn:name="Repository",type="string",JSONPath=".spec.repository"
// +kubebuilder:printcolumn:name="KeyID",type="integer",JSONPath=".status.keyId"
// +kubebuilder:printcolumn:name="Ready",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// GitHubDeployKey is the Schema for the githubdeploykeys API. Each resource
// manages exactly one deploy key on the referenced repository together with a
// Secret holding the generated private key material.
type GitHubDeployKey struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   GitHubDeployKeySpec   `json:"spec,omitempty"`
	Status GitHubDeployKeyStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// GitHubDeployKeyList contains a list of GitHubDeployKey
type GitHubDeployKeyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []GitHubDeployKey `json:"items"`
}

// TitleOrDefault returns the spec title, falling back to DefaultTitle when the
// field is unset. Defaulting also happens server-side via the CRD schema; this
// keeps specs constructed in code well-behaved.
func (s *GitHubDeployKeySpec) TitleOrDefault() string {
	if s.Title == "" {
		return DefaultTitle
	}
	return s.Title
}

// IsReadOnly returns the effective readOnly flag, defaulting to true.
func (s *GitHubDeployKeySpec) IsReadOnly() bool {
	if s.ReadOnly == nil {
		return true
	}
	return *s.ReadOnly
}

func init() {
	SchemeBuilder.Register(&GitHubDeployKey{}, &GitHubDeployKeyList{})
}
