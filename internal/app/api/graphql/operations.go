// internal/app/api/graphql/operations.go
package graphql

// Operation documents, one per named operation the remote schema exposes.
// Selections mirror what the screens actually render; derived fields
// (projectCount, taskCount, completionRate, …) are always selected from the
// server rather than recomputed locally.

const queryOrganizations = `query GetOrganizations {
  organizations { id name slug contactEmail projectCount }
}`

const queryOrganization = `query GetOrganization($slug: String!) {
  organization(slug: $slug) { id name slug contactEmail createdAt }
}`

const queryProjects = `query GetProjects($organizationSlug: String!, $status: String, $search: String) {
  projects(organizationSlug: $organizationSlug, status: $status, search: $search) {
    id name description status dueDate createdAt
    taskCount completedTasks completionRate
  }
}`

const queryProject = `query GetProject($id: ID!) {
  project(id: $id) {
    id name description status dueDate createdAt updatedAt
    taskCount completedTasks completionRate
    organization { id name slug }
    tasks { id title status assigneeEmail dueDate }
  }
}`

const queryProjectStatistics = `query GetProjectStatistics($organizationSlug: String!) {
  projectStatistics(organizationSlug: $organizationSlug) {
    totalProjects activeProjects completedProjects onHoldProjects
    totalTasks completedTasks overallCompletionRate
  }
}`

const queryTasks = `query GetTasks($projectId: ID!, $status: String, $search: String, $assigneeEmail: String) {
  tasks(projectId: $projectId, status: $status, search: $search, assigneeEmail: $assigneeEmail) {
    id title description status assigneeEmail dueDate createdAt updatedAt
  }
}`

const queryTask = `query GetTask($id: ID!) {
  task(id: $id) {
    id title description status assigneeEmail dueDate createdAt updatedAt
    project { id name }
    comments { id content authorEmail createdAt }
  }
}`

const queryOrgMembers = `query GetOrgMembers($organizationId: ID!) {
  orgMembers(organizationId: $organizationId) { id name email isOrgAdmin }
}`

const queryMe = `query GetMe($email: String!) {
  me(email: $email) {
    id name email isOrgAdmin
    organization { id name slug }
  }
}`

const mutationCreateOrganization = `mutation CreateOrganization($input: OrganizationInput!) {
  createOrganization(input: $input) {
    organization { id name slug contactEmail }
    success errors
  }
}`

const mutationUpdateOrganization = `mutation UpdateOrganization($id: ID!, $input: OrganizationInput!) {
  updateOrganization(id: $id, input: $input) {
    organization { id name slug contactEmail }
    success errors
  }
}`

const mutationCreateProject = `mutation CreateProject($input: ProjectInput!) {
  createProject(input: $input) {
    project { id name description status dueDate }
    success errors
  }
}`

const mutationUpdateProject = `mutation UpdateProject($id: ID!, $input: ProjectInput!) {
  updateProject(id: $id, input: $input) {
    project { id name description status dueDate }
    success errors
  }
}`

const mutationDeleteProject = `mutation DeleteProject($id: ID!) {
  deleteProject(id: $id) { success errors }
}`

const mutationCreateTask = `mutation CreateTask($input: TaskInput!) {
  createTask(input: $input) {
    task { id title description status assigneeEmail dueDate }
    success errors
  }
}`

const mutationUpdateTask = `mutation UpdateTask($id: ID!, $input: TaskInput!) {
  updateTask(id: $id, input: $input) {
    task { id title description status assigneeEmail dueDate }
    success errors
  }
}`

const mutationDeleteTask = `mutation DeleteTask($id: ID!) {
  deleteTask(id: $id) { success errors }
}`

const mutationAddTaskComment = `mutation AddTaskComment($input: TaskCommentInput!) {
  addTaskComment(input: $input) {
    comment { id content authorEmail createdAt }
    success errors
  }
}`

const mutationDeleteTaskComment = `mutation DeleteTaskComment($id: ID!) {
  deleteTaskComment(id: $id) { success errors }
}`

const mutationCreateOrgMember = `mutation CreateOrgMember($organizationId: ID!, $input: OrgMemberInput!) {
  createOrgMember(organizationId: $organizationId, input: $input) {
    user { id name email isOrgAdmin }
    success errors
  }
}`

const mutationDeleteOrgMember = `mutation DeleteOrgMember($id: ID!) {
  deleteOrgMember(id: $id) { success errors }
}`

const mutationLogin = `mutation Login($email: String!, $password: String!) {
  login(email: $email, password: $password) {
    user { id name email isOrgAdmin organization { id name slug } }
    success errors
  }
}`

const mutationRegister = `mutation Register($input: RegisterInput!) {
  register(input: $input) {
    user { id name email isOrgAdmin }
    organization { id name slug }
    success errors
  }
}`

const subscriptionTaskUpdated = `subscription TaskUpdated($projectId: ID!) {
  taskUpdated(projectId: $projectId) { id title status assigneeEmail }
}`

const subscriptionCommentAdded = `subscription CommentAdded($taskId: ID!) {
  commentAdded(taskId: $taskId) { id content authorEmail createdAt }
}`

const subscriptionProjectUpdated = `subscription ProjectUpdated($organizationSlug: String!) {
  projectUpdated(organizationSlug: $organizationSlug) { id name status taskCount completedTasks }
}`
